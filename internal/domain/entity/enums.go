package entity

// Enum columns are stored as Postgres enums and carried as string types in
// Go. UNKNOWN is a real value, distinct from an absent (NULL) column.

type ChiefComplaint string

const (
	ComplaintPain               ChiefComplaint = "PAIN"
	ComplaintSwelling           ChiefComplaint = "SWELLING"
	ComplaintBrokenChippedTooth ChiefComplaint = "BROKEN_CHIPPED_TOOTH"
	ComplaintToothKnockedOut    ChiefComplaint = "TOOTH_KNOCKED_OUT"
	ComplaintNeedToothPulled    ChiefComplaint = "NEED_TOOTH_PULLED"
	ComplaintFillingCrownFellOut ChiefComplaint = "FILLING_CROWN_FELL_OUT"
	ComplaintBumpOnGum          ChiefComplaint = "BUMP_ON_GUM"
	ComplaintCleaningCheckup    ChiefComplaint = "CLEANING_CHECKUP"
	ComplaintDentures           ChiefComplaint = "DENTURES"
	ComplaintNotSure            ChiefComplaint = "NOT_SURE"
)

type InsuranceType string

const (
	InsuranceMedicaid         InsuranceType = "MEDICAID"
	InsuranceMedicare         InsuranceType = "MEDICARE"
	InsuranceDual             InsuranceType = "DUAL_MEDICAID_MEDICARE"
	InsurancePrivate          InsuranceType = "PRIVATE"
	InsuranceUninsuredSelfPay InsuranceType = "UNINSURED_SELF_PAY"
	InsuranceNotSure          InsuranceType = "NOT_SURE"
)

type MedicaidPlan string

const (
	PlanPriorityPartners       MedicaidPlan = "PRIORITY_PARTNERS"
	PlanAmerigroup             MedicaidPlan = "AMERIGROUP"
	PlanMarylandPhysiciansCare MedicaidPlan = "MARYLAND_PHYSICIANS_CARE"
	PlanJaiMedical             MedicaidPlan = "JAI_MEDICAL"
	PlanMedstarFamilyChoice    MedicaidPlan = "MEDSTAR_FAMILY_CHOICE"
	PlanUnitedHealthcare       MedicaidPlan = "UNITED_HEALTHCARE"
	PlanWellpoint              MedicaidPlan = "WELLPOINT"
	PlanOther                  MedicaidPlan = "OTHER"
	PlanUnsure                 MedicaidPlan = "UNSURE"
)

type UrgencyLevel string

const (
	UrgencyToday         UrgencyLevel = "TODAY"
	UrgencyWithin3Days   UrgencyLevel = "WITHIN_3_DAYS"
	UrgencyWithin2Weeks  UrgencyLevel = "WITHIN_2_WEEKS"
	UrgencyJustExploring UrgencyLevel = "JUST_EXPLORING"
)

type BudgetBand string

const (
	BudgetFreeOnly BudgetBand = "FREE_ONLY"
	BudgetUnder50  BudgetBand = "UNDER_50"
	Budget50To150  BudgetBand = "50_TO_150"
	Budget150Plus  BudgetBand = "150_PLUS"
	BudgetNotSure  BudgetBand = "NOT_SURE"
)

type TravelMode string

const (
	TravelDrives        TravelMode = "DRIVES"
	TravelPublicTransit TravelMode = "PUBLIC_TRANSIT"
	TravelWalkOnly      TravelMode = "WALK_ONLY"
	TravelRideFromSomeone TravelMode = "RIDE_FROM_SOMEONE"
	TravelNotSure       TravelMode = "NOT_SURE"
)

type TravelTime string

const (
	TravelUpTo15Min   TravelTime = "UP_TO_15_MIN"
	TravelUpTo30Min   TravelTime = "UP_TO_30_MIN"
	TravelUpTo60Min   TravelTime = "UP_TO_60_MIN"
	TravelAnyDistance TravelTime = "ANY_DISTANCE"
)

type ServiceType string

const (
	ServiceExam               ServiceType = "EXAM"
	ServiceXray               ServiceType = "XRAY"
	ServiceCleaning           ServiceType = "CLEANING"
	ServiceFilling            ServiceType = "FILLING"
	ServiceExtractionSimple   ServiceType = "EXTRACTION_SIMPLE"
	ServiceExtractionSurgical ServiceType = "EXTRACTION_SURGICAL"
	ServiceRootCanal          ServiceType = "ROOT_CANAL"
	ServiceCrown              ServiceType = "CROWN"
	ServiceDentureFull        ServiceType = "DENTURE_FULL"
	ServiceDenturePartial     ServiceType = "DENTURE_PARTIAL"
	ServiceEmergencyVisit     ServiceType = "EMERGENCY_VISIT"
	ServiceAbscessDrainage    ServiceType = "ABSCESS_DRAINAGE"
	ServicePrescriptionOnly   ServiceType = "PRESCRIPTION_ONLY"
)

// EligibilityStatus is a four-state answer: YES / NO / LIMITED / UNKNOWN.
type EligibilityStatus string

const (
	EligibilityYes     EligibilityStatus = "YES"
	EligibilityNo      EligibilityStatus = "NO"
	EligibilityLimited EligibilityStatus = "LIMITED"
	EligibilityUnknown EligibilityStatus = "UNKNOWN"
)

type YesNoUnknown string

const (
	AnswerYes     YesNoUnknown = "YES"
	AnswerNo      YesNoUnknown = "NO"
	AnswerUnknown YesNoUnknown = "UNKNOWN"
)

type MatchJobStatus string

const (
	JobQueued     MatchJobStatus = "queued"
	JobProcessing MatchJobStatus = "processing"
	JobCompleted  MatchJobStatus = "completed"
	JobFailed     MatchJobStatus = "failed"
)

type TriageAction string

const (
	TriageRouteToED    TriageAction = "ROUTE_TO_ED"
	TriageShowWarning  TriageAction = "SHOW_WARNING"
	TriageBoostUrgency TriageAction = "BOOST_URGENCY"
	TriageAllowNormal  TriageAction = "ALLOW_NORMAL"
)
