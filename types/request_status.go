package types

import "strconv"

// RequestStatus is the closed code space every response reports its outcome
// through. The platform defines more codes than are named here; unknown codes
// survive parsing with their numeric value intact.
type RequestStatus int

const (
	RequestStatusUnknown RequestStatus = 0

	// success band
	RequestStatusOk RequestStatus = 1

	// ok-with-warning band
	RequestStatusAcceptedPartly RequestStatus = 205
	RequestStatusAcceptedQueued RequestStatus = 206

	// error bands
	RequestStatusDataError           RequestStatus = 10304
	RequestStatusHTTPError           RequestStatus = 10403
	RequestStatusSystemError         RequestStatus = 10500
	RequestStatusServiceNotAvailable RequestStatus = 10503
)

func (s RequestStatus) Code() int { return int(s) }

func (s RequestStatus) IsOk() bool { return s == RequestStatusOk }

func (s RequestStatus) IsWarning() bool { return s >= 200 && s < 300 }

func (s RequestStatus) IsError() bool { return s >= 10000 }

func (s RequestStatus) Text() string {
	switch s {
	case RequestStatusOk:
		return "OK-Normal"
	case RequestStatusAcceptedPartly:
		return "OK-AcceptedPartly"
	case RequestStatusAcceptedQueued:
		return "OK-AcceptedQueued"
	case RequestStatusDataError:
		return "DataError"
	case RequestStatusHTTPError:
		return "HTTPError"
	case RequestStatusSystemError:
		return "SystemError"
	case RequestStatusServiceNotAvailable:
		return "ServiceNotAvailable"
	}
	return "Code-" + strconv.Itoa(int(s))
}

// RequestStatusFrom keeps unrecognized numeric codes as-is so the caller can
// still see what the platform reported; garbage text maps to unknown.
func RequestStatusFrom(token string) RequestStatus {
	if n, err := strconv.Atoi(token); err == nil {
		return RequestStatus(n)
	}
	return RequestStatusUnknown
}
