package service

import (
	"fmt"

	"github.com/qmuntal/stateless"

	"donation-backend/internal/model"
)

const triggerPaymentConfirmed = "payment_confirmed"

// newDonationStateMachine describes the donation lifecycle driven by processor
// notifications. A repeated confirmation of a succeeded donation is ignored.
func newDonationStateMachine(status model.DonationStatus) *stateless.StateMachine {
	machine := stateless.NewStateMachine(status)

	machine.Configure(model.DonationStatusPending).
		Permit(triggerPaymentConfirmed, model.DonationStatusSucceeded)

	machine.Configure(model.DonationStatusSucceeded).
		Ignore(triggerPaymentConfirmed)

	machine.Configure(model.DonationStatusFailed)

	return machine
}

func nextDonationStatus(current model.DonationStatus, trigger string) (model.DonationStatus, error) {
	machine := newDonationStateMachine(current)

	if err := machine.Fire(trigger); err != nil {
		return current, fmt.Errorf("%s from %s: %w", trigger, current, err)
	}

	next, ok := machine.MustState().(model.DonationStatus)
	if !ok {
		return current, fmt.Errorf("unexpected state %v", machine.MustState())
	}

	return next, nil
}
