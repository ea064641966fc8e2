package service

import "errors"

var (
	// ErrAuthentication marks a webhook delivery that failed signature verification
	// or could not be decoded. It is the only webhook error surfaced to the caller.
	ErrAuthentication = errors.New("webhook authentication failed")

	// ErrDataInconsistency marks a delivery referencing records this service does not
	// hold, or already holds. Logged and acknowledged.
	ErrDataInconsistency = errors.New("data inconsistency")

	// ErrUpstreamLookup marks a failed processor API call made while handling a delivery.
	ErrUpstreamLookup = errors.New("upstream lookup failed")

	ErrEventNotFound = errors.New("event not found")

	ErrDuplicateSubscriber = errors.New("email already subscribed")
)
