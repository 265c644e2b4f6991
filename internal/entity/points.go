package entity

const (
	PointsEntryTypeEarn    = "earn"
	PointsEntryTypeVoucher = "voucher"
	PointsEntryTypeCharity = "charity"
)

// PointsEntry is a ledger row. Earning rows carry a positive amount,
// redemptions a negative one, so the balance is a plain sum.
type PointsEntry struct {
	Base
	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Type    string
	Amount  int64
	Details string
}
