package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Webhook processing
	ErrUnknownPayer                  = errors.New("no user exists for the payer email on this payment")
	ErrContributionReferenceExists   = errors.New("a contribution with this transaction reference has already been recorded")
	ErrContributionAmountNotPositive = errors.New("the contribution amount must be positive")

	// Goal lifecycle
	ErrGoalTitleRequired    = errors.New("the goal title must be set")
	ErrGoalCashOutDateUnset = errors.New("the goal cash-out date must be set")
	ErrNoSuchGoal           = errors.New("there is no goal for the ID you specified")

	// Monthly targets
	ErrTargetAmountNotPositive = errors.New("the target amount must be positive")
	ErrInvalidMonth            = errors.New("the month must be between 1 and 12")

	// Users & virtual accounts
	ErrEmailTaken           = errors.New("a user with this email address already exists")
	ErrVirtualAccountExists = errors.New("this user already has a virtual account")
)
