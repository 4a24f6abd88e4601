package types

import "strconv"

// Availability status sets share the same member list for pools, stations,
// EVSEs and connectors, but each entity keeps its own wire type. Numeric
// tokens are what goes on the wire; the text tokens appear in older partner
// implementations and are accepted on input.

type ChargingPoolAvailabilityStatus int
type ChargingStationAvailabilityStatus int
type EVSEAvailabilityStatus int
type ChargingConnectorAvailabilityStatus int

const (
	ChargingPoolAvailabilityUnspecified ChargingPoolAvailabilityStatus = iota
	ChargingPoolAvailabilityOutOfOrder
	ChargingPoolAvailabilityInService
	ChargingPoolAvailabilityFuture
	ChargingPoolAvailabilityDeleted
)

const (
	ChargingStationAvailabilityUnspecified ChargingStationAvailabilityStatus = iota
	ChargingStationAvailabilityOutOfOrder
	ChargingStationAvailabilityInService
	ChargingStationAvailabilityFuture
	ChargingStationAvailabilityDeleted
)

const (
	EVSEAvailabilityUnspecified EVSEAvailabilityStatus = iota
	EVSEAvailabilityOutOfOrder
	EVSEAvailabilityInService
	EVSEAvailabilityFuture
	EVSEAvailabilityDeleted
)

const (
	ChargingConnectorAvailabilityUnspecified ChargingConnectorAvailabilityStatus = iota
	ChargingConnectorAvailabilityOutOfOrder
	ChargingConnectorAvailabilityInService
	ChargingConnectorAvailabilityFuture
	ChargingConnectorAvailabilityDeleted
)

func availabilityText(n int) string {
	switch n {
	case 1:
		return "OutOfOrder"
	case 2:
		return "InService"
	case 3:
		return "Future"
	case 4:
		return "Deleted"
	}
	return "Unspecified"
}

// availabilityFromToken accepts a numeric or text token and never fails:
// anything unrecognized maps to the unspecified member.
func availabilityFromToken(token string) int {
	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= 4 {
			return n
		}
		return 0
	}
	switch token {
	case "OutOfOrder":
		return 1
	case "InService":
		return 2
	case "Future":
		return 3
	case "Deleted":
		return 4
	}
	return 0
}

func (s ChargingPoolAvailabilityStatus) Number() int {
	if s < ChargingPoolAvailabilityUnspecified || s > ChargingPoolAvailabilityDeleted {
		return 0
	}
	return int(s)
}

func (s ChargingPoolAvailabilityStatus) Text() string { return availabilityText(s.Number()) }

func ChargingPoolAvailabilityStatusFrom(token string) ChargingPoolAvailabilityStatus {
	return ChargingPoolAvailabilityStatus(availabilityFromToken(token))
}

func (s ChargingStationAvailabilityStatus) Number() int {
	if s < ChargingStationAvailabilityUnspecified || s > ChargingStationAvailabilityDeleted {
		return 0
	}
	return int(s)
}

func (s ChargingStationAvailabilityStatus) Text() string { return availabilityText(s.Number()) }

func ChargingStationAvailabilityStatusFrom(token string) ChargingStationAvailabilityStatus {
	return ChargingStationAvailabilityStatus(availabilityFromToken(token))
}

func (s EVSEAvailabilityStatus) Number() int {
	if s < EVSEAvailabilityUnspecified || s > EVSEAvailabilityDeleted {
		return 0
	}
	return int(s)
}

func (s EVSEAvailabilityStatus) Text() string { return availabilityText(s.Number()) }

func EVSEAvailabilityStatusFrom(token string) EVSEAvailabilityStatus {
	return EVSEAvailabilityStatus(availabilityFromToken(token))
}

func (s ChargingConnectorAvailabilityStatus) Number() int {
	if s < ChargingConnectorAvailabilityUnspecified || s > ChargingConnectorAvailabilityDeleted {
		return 0
	}
	return int(s)
}

func (s ChargingConnectorAvailabilityStatus) Text() string { return availabilityText(s.Number()) }

func ChargingConnectorAvailabilityStatusFrom(token string) ChargingConnectorAvailabilityStatus {
	return ChargingConnectorAvailabilityStatus(availabilityFromToken(token))
}

// EVSEBusyStatus reports the occupation state of an EVSE.
type EVSEBusyStatus int

const (
	EVSEBusyUnspecified EVSEBusyStatus = iota
	EVSEBusyFree
	EVSEBusyBusy
	EVSEBusyReserved
)

func (s EVSEBusyStatus) Number() int {
	if s < EVSEBusyUnspecified || s > EVSEBusyReserved {
		return 0
	}
	return int(s)
}

func (s EVSEBusyStatus) Text() string {
	switch s {
	case EVSEBusyFree:
		return "Free"
	case EVSEBusyBusy:
		return "Busy"
	case EVSEBusyReserved:
		return "Reserved"
	}
	return "Unspecified"
}

func EVSEBusyStatusFrom(token string) EVSEBusyStatus {
	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= 3 {
			return EVSEBusyStatus(n)
		}
		return EVSEBusyUnspecified
	}
	switch token {
	case "Free":
		return EVSEBusyFree
	case "Busy":
		return EVSEBusyBusy
	case "Reserved":
		return EVSEBusyReserved
	}
	return EVSEBusyUnspecified
}
