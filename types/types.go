package types

import "github.com/google/uuid"

// Identifier format discriminators sent alongside every scoped identifier.
// eMIP supports both the eMI3 notation and the legacy Gireve notation.
type IdFormat string

const (
	IdFormatEMI3   IdFormat = "eMI3"
	IdFormatGireve IdFormat = "Gireve"

	// user identification media
	IdFormatRFIDUID IdFormat = "RFID-UID"
	IdFormatEVCOID  IdFormat = "eMA"
)

type PartnerId string
type OperatorId string
type ChargingPoolId string
type ChargingStationId string
type EVSEId string
type ChargingConnectorId string
type UserId string
type ServiceId string
type ContractId string
type ServiceSessionId string
type PartnerSessionId string
type SessionEventId string
type SessionActionId string

func (id PartnerId) String() string           { return string(id) }
func (id OperatorId) String() string          { return string(id) }
func (id ChargingPoolId) String() string      { return string(id) }
func (id ChargingStationId) String() string   { return string(id) }
func (id EVSEId) String() string              { return string(id) }
func (id ChargingConnectorId) String() string { return string(id) }
func (id UserId) String() string              { return string(id) }
func (id ServiceId) String() string           { return string(id) }
func (id ContractId) String() string          { return string(id) }
func (id ServiceSessionId) String() string    { return string(id) }
func (id PartnerSessionId) String() string    { return string(id) }
func (id SessionEventId) String() string      { return string(id) }
func (id SessionActionId) String() string     { return string(id) }

// TransactionId correlates a request with its response. Optional on requests,
// always present on responses: a response assembled without a wire value
// carries TransactionIdZero so it stays correlatable.
type TransactionId string

const TransactionIdZero TransactionId = "0"

func (id TransactionId) String() string { return string(id) }

func (id TransactionId) IsEmpty() bool { return id == "" }

// OrZero returns the id itself, or the zero sentinel when unset.
func (id TransactionId) OrZero() TransactionId {
	if id == "" {
		return TransactionIdZero
	}
	return id
}

func NewTransactionId() TransactionId {
	return TransactionId(uuid.New().String())
}

// EventTrackingId correlates one client call across all log sinks.
type EventTrackingId string

func NewEventTrackingId() EventTrackingId {
	return EventTrackingId(uuid.New().String())
}

func (id EventTrackingId) String() string { return string(id) }
