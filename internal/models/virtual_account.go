package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VirtualAccount is the bank account number the payment provider has
// dedicated to a user for inbound transfers. It is created once during
// provisioning and never changed afterwards.
type VirtualAccount struct {
	DefaultModel
	User                 User      `json:"-"`
	UserID               uuid.UUID `json:"userId" gorm:"uniqueIndex" example:"d1b4b8c6-c184-4b9f-b44e-a0e27beda77d"`
	AccountNumber        string    `json:"accountNumber" example:"6312894011"`
	AccountName          string    `json:"accountName" example:"KOLO SAVE - ADAEZE OBI"`
	BankName             string    `json:"bankName" example:"Palmpay"`
	BankCode             string    `json:"bankCode" example:"20946"`
	ReservationReference string    `json:"reservationReference" example:"6312894011"`
}

func (a VirtualAccount) Self() string {
	return "VirtualAccount"
}

// VirtualAccountForUser returns the virtual account of the user, if one exists.
func VirtualAccountForUser(db *gorm.DB, userID uuid.UUID) (VirtualAccount, bool, error) {
	var account VirtualAccount
	err := db.Where(&VirtualAccount{UserID: userID}).First(&account).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return VirtualAccount{}, false, nil
		}
		return VirtualAccount{}, false, err
	}

	return account, true, nil
}

// SaveVirtualAccount persists a freshly provisioned virtual account.
//
// When a concurrent provisioning request has already saved an account for the
// same user, the existing account wins and is returned instead.
func SaveVirtualAccount(db *gorm.DB, account *VirtualAccount) error {
	err := db.Create(account).Error
	if errors.Is(err, ErrVirtualAccountExists) {
		// The failed insert already set an ID on account through the
		// BeforeCreate hook. Query with a clean value so the dead ID does
		// not become part of the conditions.
		var existing VirtualAccount
		err = db.Where(&VirtualAccount{UserID: account.UserID}).First(&existing).Error
		if err != nil {
			return err
		}

		*account = existing
		return nil
	}

	return err
}
