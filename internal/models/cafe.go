package models

type Cafe struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name     string `gorm:"size:250;not null;uniqueIndex" json:"name"`
	MapURL   string `gorm:"column:map_url;size:500;not null" json:"map_url"`
	ImgURL   string `gorm:"column:img_url;size:500;not null" json:"img_url"`
	Location string `gorm:"size:250;not null;index" json:"location"`
	Seats    string `gorm:"size:250;not null" json:"seats"`

	HasToilet    bool `gorm:"not null" json:"has_toilet"`
	HasWifi      bool `gorm:"not null" json:"has_wifi"`
	HasSockets   bool `gorm:"not null" json:"has_sockets"`
	CanTakeCalls bool `gorm:"not null" json:"can_take_calls"`

	CoffeePrice *string `gorm:"size:250" json:"coffee_price"`
}

func (Cafe) TableName() string {
	return "cafes"
}
