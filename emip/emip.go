package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"
)

// Schema namespaces, one per service the CPO talks to.
const (
	PlatformNS      = "https://api-iop.gireve.com/schemas/PlatformV1/"
	EVCIDynamicNS   = "https://api-iop.gireve.com/schemas/EVCIDynamicV1/"
	AuthorisationNS = "https://api-iop.gireve.com/schemas/AuthorisationV1/"
	CDRNS           = "https://api-iop.gireve.com/schemas/ChargeDetailRecordV1/"
)

const ActionPrefix = "https://api-iop.gireve.com/services/"

// SOAPAction builds the fixed action URI for an operation wire name.
func SOAPAction(operation string) string {
	return ActionPrefix + "eMIP_ToIOP_" + operation + "V1/"
}

// Serializer post-processes a marshalled operation element before it is
// wrapped into the envelope. Used for partner-specific field injection.
type Serializer func([]byte) ([]byte, error)

// Request carries the cross-cutting fields shared by every operation request.
// The cancellation signal is not stored here: it travels as the context of
// the client call that consumes the request.
type Request struct {
	PartnerId        types.PartnerId
	PartnerIdFormat  types.IdFormat
	OperatorId       types.OperatorId
	OperatorIdFormat types.IdFormat

	// TransactionId is optional; empty means wire-omitted.
	TransactionId types.TransactionId

	Timestamp       *types.DateTime
	EventTrackingId types.EventTrackingId
	RequestTimeout  time.Duration
}

func (r *Request) partnerIdFormat() types.IdFormat {
	if r.PartnerIdFormat == "" {
		return types.IdFormatEMI3
	}
	return r.PartnerIdFormat
}

func (r *Request) operatorIdFormat() types.IdFormat {
	if r.OperatorIdFormat == "" {
		return types.IdFormatEMI3
	}
	return r.OperatorIdFormat
}

func (r *Request) headerEquals(other *Request) bool {
	return r.PartnerId == other.PartnerId &&
		r.partnerIdFormat() == other.partnerIdFormat() &&
		r.OperatorId == other.OperatorId &&
		r.operatorIdFormat() == other.operatorIdFormat() &&
		r.TransactionId == other.TransactionId
}

// requestHeaderXML is embedded first in every request wire struct so the
// shared elements precede the operation payload.
type requestHeaderXML struct {
	PartnerIdType  string `xml:"partnerIdType"`
	PartnerId      string `xml:"partnerId"`
	OperatorIdType string `xml:"operatorIdType"`
	OperatorId     string `xml:"operatorId"`
	TransactionId  string `xml:"transactionId,omitempty"`
}

func (r *Request) headerXML() requestHeaderXML {
	return requestHeaderXML{
		PartnerIdType:  string(r.partnerIdFormat()),
		PartnerId:      r.PartnerId.String(),
		OperatorIdType: string(r.operatorIdFormat()),
		OperatorId:     r.OperatorId.String(),
		TransactionId:  r.TransactionId.String(),
	}
}

func (h requestHeaderXML) toRequest() Request {
	return Request{
		PartnerId:        types.PartnerId(h.PartnerId),
		PartnerIdFormat:  types.IdFormat(h.PartnerIdType),
		OperatorId:       types.OperatorId(h.OperatorId),
		OperatorIdFormat: types.IdFormat(h.OperatorIdType),
		TransactionId:    types.TransactionId(h.TransactionId),
	}
}

func (h requestHeaderXML) validate(operation string) error {
	if h.PartnerId == "" {
		return missingElement(operation, "partnerId")
	}
	if h.OperatorId == "" {
		return missingElement(operation, "operatorId")
	}
	return nil
}

func transactionIdOrZero(wire *string) types.TransactionId {
	if wire == nil || *wire == "" {
		return types.TransactionIdZero
	}
	return types.TransactionId(*wire)
}

func applySerializers(data []byte, custom []Serializer) ([]byte, error) {
	for _, serialize := range custom {
		if serialize == nil {
			continue
		}
		next, err := serialize(data)
		if err != nil {
			return nil, err
		}
		data = next
	}
	return data, nil
}

func missingElement(operation, element string) error {
	return fmt.Errorf("%s: missing required element %s", operation, element)
}

// Most operations acknowledge with just a transaction id and a status.
type ackResponseXML struct {
	XMLName       xml.Name
	TransactionId *string `xml:"transactionId"`
	RequestStatus *string `xml:"requestStatus"`
}

func parseAckResponse(operation, element string, data []byte) (types.TransactionId, types.RequestStatus, error) {
	var wire ackResponseXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return "", 0, err
	}
	if wire.XMLName.Local != element {
		return "", 0, fmt.Errorf("%s: unexpected element %s", operation, wire.XMLName.Local)
	}
	if wire.RequestStatus == nil {
		return "", 0, missingElement(operation, "requestStatus")
	}
	return transactionIdOrZero(wire.TransactionId), types.RequestStatusFrom(*wire.RequestStatus), nil
}

func marshalAckResponse(element, ns string, transactionId types.TransactionId, status types.RequestStatus) ([]byte, error) {
	type ackOut struct {
		XMLName       xml.Name
		NS            string `xml:"xmlns,attr"`
		TransactionId string `xml:"transactionId"`
		RequestStatus string `xml:"requestStatus"`
	}
	return xml.Marshal(ackOut{
		XMLName:       xml.Name{Local: element},
		NS:            ns,
		TransactionId: transactionId.OrZero().String(),
		RequestStatus: strconv.Itoa(status.Code()),
	})
}

// tryParse funnels structural errors and parser panics into onError and
// reports failure through its boolean, never letting a panic escape.
func tryParse[T any](onError func(error), parse func() (*T, error)) (result *T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			result, ok = nil, false
			if onError != nil {
				onError(fmt.Errorf("parse panic: %v", r))
			}
		}
	}()
	result, err := parse()
	if err != nil {
		if onError != nil {
			onError(err)
		}
		return nil, false
	}
	return result, true
}
