package models

import "errors"

var (
	ErrZeroOdds                = errors.New("odds cannot be zero")
	ErrOddsOutOfRange          = errors.New("odds must be between -1000000 and 1000000")
	ErrNonPositiveStake        = errors.New("stake must be positive")
	ErrStakePrecision          = errors.New("stake must have at most 2 decimal places")
	ErrStakeTooLarge           = errors.New("stake must not exceed 1000000000")
	ErrCashoutAmountRequired   = errors.New("cashout amount required when status is Cashout")
	ErrInvalidCashoutAmount    = errors.New("cashout amount must be between 0 and 1000000000 with at most 2 decimal places")
	ErrInvalidSettlementStatus = errors.New("settlement status must be one of Won, Lost, Push, Void, Cashout")
	ErrInvalidBetStatus        = errors.New("invalid bet status")
	ErrInvalidSport            = errors.New("invalid sport")
	ErrInvalidMarketType       = errors.New("invalid market type")
	ErrInvalidBetName          = errors.New("bet name must be between 1 and 255 characters")
	ErrInvalidLeague           = errors.New("league must be at most 100 characters")
	ErrInvalidTeamOrPlayer     = errors.New("team or player must be at most 255 characters")

	ErrInvalidBaseUnit       = errors.New("base unit must be a positive amount with at most 2 decimal places")
	ErrBaseUnitNotConfigured = errors.New("user settings not found, set your base unit first")

	ErrInvalidSportsbookName = errors.New("sportsbook name must be between 1 and 100 characters")
	ErrUnknownSportsbook     = errors.New("sportsbook not found")

	ErrInvalidDimension = errors.New("breakdown dimension must be one of book, sport, market")
	ErrInvalidMonth     = errors.New("month must be formatted as YYYY-MM")
	ErrInvalidDateRange = errors.New("from date must not be after to date")
	ErrInvalidDate      = errors.New("dates must be formatted as YYYY-MM-DD or RFC 3339")

	ErrRowParse              = errors.New("could not parse row")
	ErrUnknownImportProvider = errors.New("unknown import provider")
	ErrInvalidImportFile     = errors.New("import file must be a CSV")
	ErrImportTooLarge        = errors.New("import file exceeds the size or row limit")

	ErrInvalidGroupName        = errors.New("group name must be between 3 and 50 characters")
	ErrInvalidGroupDescription = errors.New("group description must be at most 200 characters")
	ErrNotGroupMember          = errors.New("you are not a member of this group")
	ErrAlreadyGroupMember      = errors.New("you are already a member of this group")
	ErrInviteCodeExhausted     = errors.New("could not allocate a unique invite code")

	ErrInvalidUserID = errors.New("invalid user ID")

	ErrRecordNotFound = errors.New("record not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")

	ErrDatabaseCredentialNotConfigured = errors.New("database credential not configured")
)

// IsValidationError reports whether err is a user-correctable input error
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var validationErrors = []error{
	ErrZeroOdds,
	ErrOddsOutOfRange,
	ErrNonPositiveStake,
	ErrStakePrecision,
	ErrStakeTooLarge,
	ErrCashoutAmountRequired,
	ErrInvalidCashoutAmount,
	ErrInvalidSettlementStatus,
	ErrInvalidBetStatus,
	ErrInvalidSport,
	ErrInvalidMarketType,
	ErrInvalidBetName,
	ErrInvalidLeague,
	ErrInvalidTeamOrPlayer,
	ErrInvalidBaseUnit,
	ErrInvalidSportsbookName,
	ErrUnknownSportsbook,
	ErrInvalidDimension,
	ErrInvalidMonth,
	ErrInvalidDateRange,
	ErrInvalidDate,
	ErrUnknownImportProvider,
	ErrInvalidImportFile,
	ErrImportTooLarge,
	ErrInvalidGroupName,
	ErrInvalidGroupDescription,
	ErrInvalidUserID,
}
