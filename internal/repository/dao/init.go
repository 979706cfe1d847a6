package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Activity{},
		&Contact{},
		&Member{},
		&Season{},
		&MembershipSubscription{},
		&Article{},
		&CustomerAccount{},
		&Bill{},
		&BillLine{},
		&DegreeLevel{},
		&SubDegreeLevel{},
		&Event{},
		&Organizer{},
		&Participant{},
		&DegreeRecord{},
	)
}
