package settings

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// Parameter is one named configuration value. The table is owned by the
// surrounding application; this module only reads it after seeding defaults.
type Parameter struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"unique;not null"`
	Value string `gorm:"not null"`
}

const (
	paramActivityScoping    = "degrees.activity_scoping"
	paramSubDegreesEnabled  = "degrees.sub_degrees_enabled"
	paramDegreeLabel        = "degrees.degree_label"
	paramSubDegreeLabel     = "degrees.sub_degree_label"
	paramDefaultExamComment = "events.default_exam_comment"
)

var defaults = map[string]string{
	paramActivityScoping:    "true",
	paramSubDegreesEnabled:  "true",
	paramDegreeLabel:        "Degree",
	paramSubDegreeLabel:     "Sub-degree",
	paramDefaultExamComment: "Presented at the examination",
}

// Params is the read-only snapshot handed to the services.
type Params struct {
	ActivityScopingEnabled bool
	SubDegreesEnabled      bool
	DegreeLabel            string
	SubDegreeLabel         string
	DefaultExamComment     string
}

// Load seeds the missing defaults (idempotent check-and-create) and returns
// the resulting snapshot.
func Load(db *gorm.DB) (*Params, error) {
	if err := db.AutoMigrate(&Parameter{}); err != nil {
		return nil, fmt.Errorf("db.AutoMigrate -> %w", err)
	}

	for name, value := range defaults {
		param := Parameter{Name: name, Value: value}
		result := db.Where(Parameter{Name: name}).Attrs(Parameter{Value: value}).FirstOrCreate(&param)
		if result.Error != nil {
			return nil, fmt.Errorf("db.FirstOrCreate(%v) -> %w", name, result.Error)
		}
	}

	var stored []Parameter
	if result := db.Find(&stored); result.Error != nil {
		return nil, fmt.Errorf("db.Find -> %w", result.Error)
	}

	byName := make(map[string]string, len(stored))
	for _, p := range stored {
		byName[p.Name] = p.Value
	}

	params := &Params{
		DegreeLabel:        byName[paramDegreeLabel],
		SubDegreeLabel:     byName[paramSubDegreeLabel],
		DefaultExamComment: byName[paramDefaultExamComment],
	}
	params.ActivityScopingEnabled, _ = strconv.ParseBool(byName[paramActivityScoping])
	params.SubDegreesEnabled, _ = strconv.ParseBool(byName[paramSubDegreesEnabled])

	return params, nil
}
