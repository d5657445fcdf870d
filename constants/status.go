package constants

// Account roles embedded in bearer tokens
const (
	RoleUser     = "user"
	RoleRestroom = "restroom"
)

// Room queue status
const (
	QueueStatusVacant      = "Vacant"
	QueueStatusInUse       = "In Use"
	QueueStatusCleaning    = "Cleaning"
	QueueStatusMaintenance = "Under Maintenance"
)

// ValidQueueStatuses is the accepted set for room status transitions.
var ValidQueueStatuses = []string{
	QueueStatusVacant,
	QueueStatusInUse,
	QueueStatusCleaning,
	QueueStatusMaintenance,
}

// Restroom type
const (
	TypePublic  = "public"
	TypePaid    = "paid"
	TypePrivate = "private"
)

var ValidTypes = []string{TypePublic, TypePaid, TypePrivate}

// Restroom gender
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderUnisex = "unisex"
)

var ValidGenders = []string{GenderMale, GenderFemale, GenderUnisex}

// Description feature flags
const (
	FeatureCCTV         = "cctv"
	FeatureHandicap     = "handicap_accessible"
	FeatureBabyChanging = "baby_changing_station"
)

var ValidFeatures = []string{FeatureCCTV, FeatureHandicap, FeatureBabyChanging}

// Aggregate status labels derived from room statuses
const (
	CurrentStatusInactive = "INACTIVE"
	CurrentStatusVacant   = "VACANT"
)

// Limits
const (
	MaxRestroomPictures = 4
	MaxReviewPictures   = 1
	MinPasswordLength   = 6
)

func IsValidQueueStatus(s string) bool {
	return contains(ValidQueueStatuses, s)
}

func IsValidType(s string) bool {
	return contains(ValidTypes, s)
}

func IsValidGender(s string) bool {
	return contains(ValidGenders, s)
}

func IsValidFeature(s string) bool {
	return contains(ValidFeatures, s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
