package entity

type TreeStage string

const (
	TreeStageSeed    = TreeStage("seed")
	TreeStageSprout  = TreeStage("sprout")
	TreeStageSapling = TreeStage("sapling")
	TreeStageTree    = TreeStage("tree")
)

// NextStage returns the stage reached by one more watering day and
// whether the tree can still grow.
func (s TreeStage) NextStage() (TreeStage, bool) {
	switch s {
	case TreeStageSeed:
		return TreeStageSprout, true
	case TreeStageSprout:
		return TreeStageSapling, true
	case TreeStageSapling:
		return TreeStageTree, true
	default:
		return s, false
	}
}

type Tree struct {
	Base
	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Stage TreeStage
	// WaterHistory holds the calendar dates (YYYY-MM-DD) this tree was
	// watered, in watering order.
	WaterHistory Array[string]
	// Retired trees reached the full-grown stage and were watered once
	// more. They are kept for the history list and never mutated again.
	Retired bool

	ReminderSet    bool
	ReminderHour   int
	ReminderMinute int
}
