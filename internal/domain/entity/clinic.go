package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Clinic is one clinic's matchable profile. Optional columns are pointers
// so a missing value stays distinguishable from a zero value.
type Clinic struct {
	ID                 uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name               string       `gorm:"type:text;not null" json:"name"`
	ClinicType         string       `gorm:"type:text;not null;default:'OTHER'" json:"clinic_type"`
	Address            *string      `gorm:"type:text" json:"address,omitempty"`
	City               *string      `gorm:"type:text" json:"city,omitempty"`
	State              *string      `gorm:"type:text;default:'MD'" json:"state,omitempty"`
	Zip                *string      `gorm:"type:text;index" json:"zip,omitempty"`
	County             *string      `gorm:"type:text;index" json:"county,omitempty"`
	Lat                *float64     `gorm:"type:double precision" json:"lat,omitempty"`
	Lng                *float64     `gorm:"type:double precision" json:"lng,omitempty"`
	Phone              *string      `gorm:"type:text" json:"phone,omitempty"`
	WebsiteURL         *string      `gorm:"type:text" json:"website_url,omitempty"`
	Active             bool         `gorm:"not null;default:true;index" json:"active"`
	LanguagesAvailable StringList   `gorm:"type:jsonb" json:"languages_available,omitempty"`
	AdaAccessible      YesNoUnknown `gorm:"type:text;default:'UNKNOWN'" json:"ada_accessible"`
	ParkingAvailable   YesNoUnknown `gorm:"type:text;default:'UNKNOWN'" json:"parking_available"`
	NearTransitStop    bool         `gorm:"default:false" json:"near_transit_stop"`
	LastVerifiedAt     *time.Time   `gorm:"type:timestamptz" json:"last_verified_at,omitempty"`
	CreatedAt          time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	AccessRule    *AccessRule         `gorm:"foreignKey:ClinicID" json:"access_rule,omitempty"`
	Services      []ClinicService     `gorm:"foreignKey:ClinicID" json:"services,omitempty"`
	ServiceRules  []ClinicServiceRule `gorm:"foreignKey:ClinicID" json:"service_rules,omitempty"`
	Pricing       []PricingEntry      `gorm:"foreignKey:ClinicID" json:"pricing,omitempty"`
	AccessTimings []AccessTiming      `gorm:"foreignKey:ClinicID" json:"access_timings,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}

// ClinicService is one offered service with per-insurance availability flags.
type ClinicService struct {
	ID                   uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID             uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:clinic_services_unique,priority:1" json:"clinic_id"`
	ServiceType          ServiceType `gorm:"type:text;not null;uniqueIndex:clinic_services_unique,priority:2" json:"service_type"`
	AvailableForMedicaid bool        `gorm:"default:false" json:"available_for_medicaid"`
	AvailableForUninsured bool       `gorm:"default:false" json:"available_for_uninsured"`
	AvailableForPrivate  bool        `gorm:"default:true" json:"available_for_private"`
	NewPatientsAccepted  bool        `gorm:"default:true" json:"new_patients_accepted"`
	LastVerifiedAt       *time.Time  `gorm:"type:timestamptz" json:"last_verified_at,omitempty"`
}

func (ClinicService) TableName() string {
	return "clinic_services"
}

// AccessRule is the clinic-level eligibility record (one per clinic).
type AccessRule struct {
	ID                    uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID              uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex" json:"clinic_id"`
	AcceptsMedicaidAdults EligibilityStatus `gorm:"type:text;default:'UNKNOWN'" json:"accepts_medicaid_adults"`
	AcceptsMedicaidChildren EligibilityStatus `gorm:"type:text;default:'UNKNOWN'" json:"accepts_medicaid_children"`
	MedicaidPlansAccepted PlanList          `gorm:"type:jsonb" json:"medicaid_plans_accepted"`
	AcceptsMedicare       YesNoUnknown      `gorm:"type:text;default:'UNKNOWN'" json:"accepts_medicare"`
	UninsuredWelcome      EligibilityStatus `gorm:"type:text;default:'UNKNOWN'" json:"uninsured_welcome"`
	SlidingScaleAvailable YesNoUnknown      `gorm:"type:text;default:'UNKNOWN'" json:"sliding_scale_available"`
	SeesEmergencyPain     EligibilityStatus `gorm:"type:text;default:'UNKNOWN'" json:"sees_emergency_pain"`
	SeesSwelling          EligibilityStatus `gorm:"type:text;default:'UNKNOWN'" json:"sees_swelling"`
	WalkInAllowed         EligibilityStatus `gorm:"type:text;default:'UNKNOWN'" json:"walk_in_allowed"`
	ReferralRequired      YesNoUnknown      `gorm:"type:text;default:'UNKNOWN'" json:"referral_required"`
	LastVerifiedAt        *time.Time        `gorm:"type:timestamptz" json:"last_verified_at,omitempty"`
	UpdatedAt             time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AccessRule) TableName() string {
	return "access_rules"
}

// ClinicServiceRule is an explicit accept/reject override per service and
// insurance type. Rules for services a clinic does not offer are inert.
type ClinicServiceRule struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID      uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:clinic_service_rules_unique,priority:1" json:"clinic_id"`
	ServiceType   ServiceType       `gorm:"type:text;not null;uniqueIndex:clinic_service_rules_unique,priority:2" json:"service_type"`
	InsuranceType InsuranceType     `gorm:"type:text;not null;uniqueIndex:clinic_service_rules_unique,priority:3" json:"insurance_type"`
	Accepts       EligibilityStatus `gorm:"type:text;default:'UNKNOWN'" json:"accepts"`
	LastVerifiedAt *time.Time       `gorm:"type:timestamptz" json:"last_verified_at,omitempty"`
}

func (ClinicServiceRule) TableName() string {
	return "clinic_service_rules"
}

// PricingEntry is one service's price range at a clinic.
type PricingEntry struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID       uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:pricing_unique,priority:1" json:"clinic_id"`
	ServiceType    ServiceType      `gorm:"type:text;not null;uniqueIndex:pricing_unique,priority:2" json:"service_type"`
	PriceMin       *decimal.Decimal `gorm:"type:decimal(8,2)" json:"price_min,omitempty"`
	PriceMax       *decimal.Decimal `gorm:"type:decimal(8,2)" json:"price_max,omitempty"`
	PricingModel   *string          `gorm:"type:text" json:"pricing_model,omitempty"`
	MedicaidCopay  *decimal.Decimal `gorm:"type:decimal(8,2)" json:"medicaid_copay,omitempty"`
	LastVerifiedAt *time.Time       `gorm:"type:timestamptz" json:"last_verified_at,omitempty"`
}

func (PricingEntry) TableName() string {
	return "pricing"
}

// AccessTiming is an estimated wait, optionally scoped to a service and/or
// insurance type (NULL scope means it applies generally).
type AccessTiming struct {
	ID                        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID                  uuid.UUID      `gorm:"type:uuid;not null;index" json:"clinic_id"`
	ServiceType               *ServiceType   `gorm:"type:text" json:"service_type,omitempty"`
	InsuranceType             *InsuranceType `gorm:"type:text" json:"insurance_type,omitempty"`
	NextAvailableDaysEstimate *int           `gorm:"type:smallint" json:"next_available_days_estimate,omitempty"`
	UpdatedAt                 time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AccessTiming) TableName() string {
	return "access_timing"
}

// StringList stores a string slice as JSONB.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// PlanList stores accepted Medicaid plans as JSONB. An empty list means
// "accepts all plans".
type PlanList []MedicaidPlan

func (l PlanList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *PlanList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, dest)
}
