package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContributionStatusSuccess is the status of every recorded contribution.
// Failed or pending provider events are never written to the ledger.
const ContributionStatusSuccess = "SUCCESS"

// Contribution is one provider-confirmed payment credited to a user.
// Contributions are immutable ledger entries: they are created exactly once
// and never updated or deleted.
type Contribution struct {
	DefaultModel
	User                 User            `json:"-"`
	UserID               uuid.UUID       `json:"userId" example:"d1b4b8c6-c184-4b9f-b44e-a0e27beda77d"`
	Amount               decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"5000"`
	TransactionReference string          `json:"transactionReference" gorm:"uniqueIndex" example:"PP-9f86d081884c"`
	Status               string          `json:"status" example:"SUCCESS"`
}

func (c Contribution) Self() string {
	return "Contribution"
}

func (c *Contribution) AfterSave(_ *gorm.DB) error {
	if !c.Amount.IsPositive() {
		return ErrContributionAmountNotPositive
	}

	return nil
}

// ContributionByReference returns the contribution recorded for the
// transaction reference. The lookup always runs with a fresh value so that
// no leftover fields of the caller end up in the query conditions.
func ContributionByReference(db *gorm.DB, reference string) (Contribution, error) {
	var contribution Contribution
	err := db.Where(&Contribution{TransactionReference: reference}).First(&contribution).Error
	return contribution, err
}

// PaymentEvent is a verified payment notification from the provider,
// normalized at the webhook boundary.
type PaymentEvent struct {
	TransactionReference string
	Amount               decimal.Decimal
	PayerEmail           string
}

// RecordContribution records a verified payment event exactly once.
//
// The lookup by transaction reference and the insert run in a single
// transaction. The lookup is an optimization only: the unique index on the
// transaction reference is the authoritative guard, so a concurrent delivery
// of the same event loses the insert race and is reported as the duplicate
// it is, not as an error.
//
// It returns the ledger entry for the event and whether it was created by
// this call. Re-deliveries return the existing entry with created == false.
func RecordContribution(db *gorm.DB, event PaymentEvent) (Contribution, bool, error) {
	var contribution Contribution
	created := false

	err := db.Transaction(func(tx *gorm.DB) error {
		// The provider retries deliveries until it sees a success response,
		// so an already recorded reference is a no-op.
		existing, err := ContributionByReference(tx, event.TransactionReference)
		if err == nil {
			contribution = existing
			return nil
		}
		if !errors.Is(err, ErrResourceNotFound) {
			return err
		}

		user, err := UserByEmail(tx, event.PayerEmail)
		if err != nil {
			if errors.Is(err, ErrResourceNotFound) {
				return ErrUnknownPayer
			}
			return err
		}

		contribution = Contribution{
			UserID:               user.ID,
			Amount:               event.Amount,
			TransactionReference: event.TransactionReference,
			Status:               ContributionStatusSuccess,
		}

		err = tx.Create(&contribution).Error
		if err != nil {
			return err
		}

		created = true
		return nil
	})

	// Losing the insert race against a concurrent delivery of the same
	// reference is the duplicate case, not a failure. The rolled back insert
	// left a generated ID on contribution, so the winning row must be read
	// with a clean value to keep that ID out of the query conditions.
	if errors.Is(err, ErrContributionReferenceExists) {
		existing, err := ContributionByReference(db, event.TransactionReference)
		return existing, false, err
	}

	if err != nil {
		return Contribution{}, false, err
	}

	return contribution, created, nil
}
