package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"strconv"
)

const SetSessionEventReportFeatureName = "SetSessionEventReport"

var SetSessionEventReportAction = SOAPAction("SetSessionEventReport")

// SessionEvent is the payload of a session event report.
type SessionEvent struct {
	Nature                types.SessionEventNature
	EventDate             *types.DateTime
	Parameter             string
	RelatedSessionEventId types.SessionEventId
}

func (e SessionEvent) Equals(other SessionEvent) bool {
	return e.Nature == other.Nature &&
		e.EventDate.Equals(other.EventDate) &&
		e.Parameter == other.Parameter &&
		e.RelatedSessionEventId == other.RelatedSessionEventId
}

type sessionEventXML struct {
	Nature                *string         `xml:"sessionEventNature"`
	EventDate             *types.DateTime `xml:"sessionEventDate"`
	Parameter             string          `xml:"sessionEventParameter,omitempty"`
	RelatedSessionEventId string          `xml:"relatedSessionEventId,omitempty"`
}

// SetSessionEventReportRequest reports a lifecycle event of a running
// service session.
type SetSessionEventReportRequest struct {
	Request
	ServiceSessionId     types.ServiceSessionId
	ExecPartnerSessionId types.PartnerSessionId
	Event                SessionEvent
}

func (r *SetSessionEventReportRequest) GetFeatureName() string {
	return SetSessionEventReportFeatureName
}

type setSessionEventReportRequestXML struct {
	XMLName xml.Name `xml:"eMIP_ToIOP_SetSessionEventReportRequest"`
	NS      string   `xml:"xmlns,attr"`
	requestHeaderXML
	ServiceSessionId     string          `xml:"serviceSessionId"`
	ExecPartnerSessionId string          `xml:"execPartnerSessionId,omitempty"`
	Event                sessionEventXML `xml:"sessionEvent"`
}

func (r *SetSessionEventReportRequest) ToXML(custom ...Serializer) ([]byte, error) {
	nature := strconv.Itoa(r.Event.Nature.Number())
	data, err := xml.Marshal(setSessionEventReportRequestXML{
		NS:                   AuthorisationNS,
		requestHeaderXML:     r.headerXML(),
		ServiceSessionId:     r.ServiceSessionId.String(),
		ExecPartnerSessionId: r.ExecPartnerSessionId.String(),
		Event: sessionEventXML{
			Nature:                &nature,
			EventDate:             r.Event.EventDate,
			Parameter:             r.Event.Parameter,
			RelatedSessionEventId: r.Event.RelatedSessionEventId.String(),
		},
	})
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func ParseSetSessionEventReportRequest(data []byte) (*SetSessionEventReportRequest, error) {
	var wire setSessionEventReportRequestXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := wire.validate(SetSessionEventReportFeatureName); err != nil {
		return nil, err
	}
	if wire.ServiceSessionId == "" {
		return nil, missingElement(SetSessionEventReportFeatureName, "serviceSessionId")
	}
	if wire.Event.Nature == nil {
		return nil, missingElement(SetSessionEventReportFeatureName, "sessionEventNature")
	}
	if wire.Event.EventDate == nil {
		return nil, missingElement(SetSessionEventReportFeatureName, "sessionEventDate")
	}
	return &SetSessionEventReportRequest{
		Request:              wire.toRequest(),
		ServiceSessionId:     types.ServiceSessionId(wire.ServiceSessionId),
		ExecPartnerSessionId: types.PartnerSessionId(wire.ExecPartnerSessionId),
		Event: SessionEvent{
			Nature:                types.SessionEventNatureFrom(*wire.Event.Nature),
			EventDate:             wire.Event.EventDate,
			Parameter:             wire.Event.Parameter,
			RelatedSessionEventId: types.SessionEventId(wire.Event.RelatedSessionEventId),
		},
	}, nil
}

func TryParseSetSessionEventReportRequest(data []byte, onError func(error)) (*SetSessionEventReportRequest, bool) {
	return tryParse(onError, func() (*SetSessionEventReportRequest, error) {
		return ParseSetSessionEventReportRequest(data)
	})
}

func (r *SetSessionEventReportRequest) Equals(other *SetSessionEventReportRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.headerEquals(&other.Request) &&
		r.ServiceSessionId == other.ServiceSessionId &&
		r.ExecPartnerSessionId == other.ExecPartnerSessionId &&
		r.Event.Equals(other.Event)
}

type SetSessionEventReportResponse struct {
	Request        *SetSessionEventReportRequest
	TransactionId  types.TransactionId
	RequestStatus  types.RequestStatus
	SessionEventId types.SessionEventId
}

func (r *SetSessionEventReportResponse) GetFeatureName() string {
	return SetSessionEventReportFeatureName
}

type setSessionEventReportResponseXML struct {
	XMLName        xml.Name `xml:"eMIP_ToIOP_SetSessionEventReportResponse"`
	TransactionId  *string  `xml:"transactionId"`
	SessionEventId string   `xml:"sessionEventId"`
	RequestStatus  *string  `xml:"requestStatus"`
}

type SetSessionEventReportResponseParser func(*SetSessionEventReportResponse) (*SetSessionEventReportResponse, error)

func ParseSetSessionEventReportResponse(req *SetSessionEventReportRequest, data []byte, custom ...SetSessionEventReportResponseParser) (*SetSessionEventReportResponse, error) {
	var wire setSessionEventReportResponseXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if wire.RequestStatus == nil {
		return nil, missingElement(SetSessionEventReportFeatureName, "requestStatus")
	}
	resp := &SetSessionEventReportResponse{
		Request:        req,
		TransactionId:  transactionIdOrZero(wire.TransactionId),
		RequestStatus:  types.RequestStatusFrom(*wire.RequestStatus),
		SessionEventId: types.SessionEventId(wire.SessionEventId),
	}
	for _, parse := range custom {
		if parse == nil {
			continue
		}
		next, err := parse(resp)
		if err != nil {
			return nil, err
		}
		if next != nil {
			resp = next
		}
	}
	return resp, nil
}

func TryParseSetSessionEventReportResponse(req *SetSessionEventReportRequest, data []byte, onError func(error), custom ...SetSessionEventReportResponseParser) (*SetSessionEventReportResponse, bool) {
	return tryParse(onError, func() (*SetSessionEventReportResponse, error) {
		return ParseSetSessionEventReportResponse(req, data, custom...)
	})
}

type setSessionEventReportResponseOutXML struct {
	XMLName        xml.Name `xml:"eMIP_ToIOP_SetSessionEventReportResponse"`
	NS             string   `xml:"xmlns,attr"`
	TransactionId  string   `xml:"transactionId"`
	SessionEventId string   `xml:"sessionEventId,omitempty"`
	RequestStatus  string   `xml:"requestStatus"`
}

func (r *SetSessionEventReportResponse) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := xml.Marshal(setSessionEventReportResponseOutXML{
		NS:             AuthorisationNS,
		TransactionId:  r.TransactionId.OrZero().String(),
		SessionEventId: r.SessionEventId.String(),
		RequestStatus:  strconv.Itoa(r.RequestStatus.Code()),
	})
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func (r *SetSessionEventReportResponse) Equals(other *SetSessionEventReportResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TransactionId == other.TransactionId &&
		r.RequestStatus == other.RequestStatus &&
		r.SessionEventId == other.SessionEventId
}

type SetSessionEventReportResponseBuilder struct {
	Request        *SetSessionEventReportRequest
	TransactionId  types.TransactionId
	RequestStatus  types.RequestStatus
	SessionEventId types.SessionEventId
}

func (r *SetSessionEventReportResponse) ToBuilder() *SetSessionEventReportResponseBuilder {
	return &SetSessionEventReportResponseBuilder{
		Request:        r.Request,
		TransactionId:  r.TransactionId,
		RequestStatus:  r.RequestStatus,
		SessionEventId: r.SessionEventId,
	}
}

func (b *SetSessionEventReportResponseBuilder) Build() *SetSessionEventReportResponse {
	return &SetSessionEventReportResponse{
		Request:        b.Request,
		TransactionId:  b.TransactionId.OrZero(),
		RequestStatus:  b.RequestStatus,
		SessionEventId: b.SessionEventId,
	}
}

func (b *SetSessionEventReportResponseBuilder) Equals(other *SetSessionEventReportResponseBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Build().Equals(other.Build())
}
