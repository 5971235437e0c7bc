package models

// DisplaySetting is one global product-card visibility flag. Products
// may override individual keys via DisplayOverrides.
type DisplaySetting struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Key       string `gorm:"uniqueIndex;not null" json:"key"`
	Value     bool   `gorm:"not null;default:true" json:"value"`
	Label     string `json:"label"`
	Group     string `gorm:"index" json:"group"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

// TableName sets the table name.
func (DisplaySetting) TableName() string {
	return "display_settings"
}
