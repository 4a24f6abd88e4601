package types

import "strconv"

// AuthorisationValue is the outcome of a GetServiceAuthorisation call.
type AuthorisationValue int

const (
	AuthorisationUnspecified AuthorisationValue = iota
	AuthorisationAuthorised
	AuthorisationNotAuthorised
)

func (v AuthorisationValue) Number() int {
	if v < AuthorisationUnspecified || v > AuthorisationNotAuthorised {
		return 0
	}
	return int(v)
}

func (v AuthorisationValue) Text() string {
	switch v {
	case AuthorisationAuthorised:
		return "Authorised"
	case AuthorisationNotAuthorised:
		return "NotAuthorised"
	}
	return "Unspecified"
}

func AuthorisationValueFrom(token string) AuthorisationValue {
	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= 2 {
			return AuthorisationValue(n)
		}
		return AuthorisationUnspecified
	}
	switch token {
	case "Authorised":
		return AuthorisationAuthorised
	case "NotAuthorised":
		return AuthorisationNotAuthorised
	}
	return AuthorisationUnspecified
}

// RemoteStartStop names the service action an authorisation is requested for.
type RemoteStartStop int

const (
	RemoteStartStopUnspecified RemoteStartStop = iota
	RemoteStart
	RemoteStop
)

func (v RemoteStartStop) Number() int {
	if v < RemoteStartStopUnspecified || v > RemoteStop {
		return 0
	}
	return int(v)
}

func (v RemoteStartStop) Text() string {
	switch v {
	case RemoteStart:
		return "Start"
	case RemoteStop:
		return "Stop"
	}
	return "Unspecified"
}

func RemoteStartStopFrom(token string) RemoteStartStop {
	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= 2 {
			return RemoteStartStop(n)
		}
		return RemoteStartStopUnspecified
	}
	switch token {
	case "Start", "RemoteStart":
		return RemoteStart
	case "Stop", "RemoteStop":
		return RemoteStop
	}
	return RemoteStartStopUnspecified
}

// CDRNature distinguishes intermediate session records from the final one.
type CDRNature int

const (
	CDRNatureUnspecified CDRNature = iota
	CDRNatureFinal
	CDRNatureIntermediate
)

func (v CDRNature) Number() int {
	if v < CDRNatureUnspecified || v > CDRNatureIntermediate {
		return 0
	}
	return int(v)
}

func (v CDRNature) Text() string {
	switch v {
	case CDRNatureFinal:
		return "Final"
	case CDRNatureIntermediate:
		return "Intermediate"
	}
	return "Unspecified"
}

func CDRNatureFrom(token string) CDRNature {
	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= 2 {
			return CDRNature(n)
		}
		return CDRNatureUnspecified
	}
	switch token {
	case "Final":
		return CDRNatureFinal
	case "Intermediate":
		return CDRNatureIntermediate
	}
	return CDRNatureUnspecified
}

// MeterType names the quantity a meter report carries.
type MeterType int

const (
	MeterTypeUnspecified MeterType = iota
	MeterTypeTotalDuration
	MeterTypeTotalEnergy
	MeterTypeTotalCost
)

func (v MeterType) Number() int {
	if v < MeterTypeUnspecified || v > MeterTypeTotalCost {
		return 0
	}
	return int(v)
}

func (v MeterType) Text() string {
	switch v {
	case MeterTypeTotalDuration:
		return "TotalDuration"
	case MeterTypeTotalEnergy:
		return "TotalEnergy"
	case MeterTypeTotalCost:
		return "TotalCost"
	}
	return "Unspecified"
}

func MeterTypeFrom(token string) MeterType {
	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= 3 {
			return MeterType(n)
		}
		return MeterTypeUnspecified
	}
	switch token {
	case "TotalDuration":
		return MeterTypeTotalDuration
	case "TotalEnergy":
		return MeterTypeTotalEnergy
	case "TotalCost":
		return MeterTypeTotalCost
	}
	return MeterTypeUnspecified
}

// SessionEventNature classifies a session event report.
type SessionEventNature int

const (
	SessionEventUnspecified SessionEventNature = iota
	SessionEventStarted
	SessionEventSuspended
	SessionEventResumed
	SessionEventEnded
)

func (v SessionEventNature) Number() int {
	if v < SessionEventUnspecified || v > SessionEventEnded {
		return 0
	}
	return int(v)
}

func (v SessionEventNature) Text() string {
	switch v {
	case SessionEventStarted:
		return "Started"
	case SessionEventSuspended:
		return "Suspended"
	case SessionEventResumed:
		return "Resumed"
	case SessionEventEnded:
		return "Ended"
	}
	return "Unspecified"
}

func SessionEventNatureFrom(token string) SessionEventNature {
	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= 4 {
			return SessionEventNature(n)
		}
		return SessionEventUnspecified
	}
	switch token {
	case "Started":
		return SessionEventStarted
	case "Suspended":
		return SessionEventSuspended
	case "Resumed":
		return SessionEventResumed
	case "Ended":
		return SessionEventEnded
	}
	return SessionEventUnspecified
}
