package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"strconv"
)

const GetServiceAuthorisationFeatureName = "GetServiceAuthorisation"

var GetServiceAuthorisationAction = SOAPAction("GetServiceAuthorisation")

// GetServiceAuthorisationRequest asks the platform whether a user may start
// or stop the requested service on an EVSE.
type GetServiceAuthorisationRequest struct {
	Request
	EVSEId                  types.EVSEId
	UserIdFormat            types.IdFormat
	UserId                  types.UserId
	RequestedServiceId      types.ServiceId
	ActionType              types.RemoteStartStop
	PartnerServiceSessionId types.PartnerSessionId
	BookingId               string
}

func (r *GetServiceAuthorisationRequest) GetFeatureName() string {
	return GetServiceAuthorisationFeatureName
}

func (r *GetServiceAuthorisationRequest) userIdFormat() types.IdFormat {
	if r.UserIdFormat == "" {
		return types.IdFormatRFIDUID
	}
	return r.UserIdFormat
}

type getServiceAuthorisationRequestXML struct {
	XMLName xml.Name `xml:"eMIP_ToIOP_GetServiceAuthorisationRequest"`
	NS      string   `xml:"xmlns,attr"`
	requestHeaderXML
	EVSEId                  string  `xml:"EVSEId"`
	UserIdType              string  `xml:"userIdType"`
	UserId                  string  `xml:"userId"`
	RequestedServiceId      string  `xml:"requestedServiceId"`
	ActionType              *string `xml:"actionType"`
	PartnerServiceSessionId string  `xml:"partnerServiceSessionId,omitempty"`
	BookingId               string  `xml:"bookingId,omitempty"`
}

func (r *GetServiceAuthorisationRequest) ToXML(custom ...Serializer) ([]byte, error) {
	actionType := strconv.Itoa(r.ActionType.Number())
	data, err := xml.Marshal(getServiceAuthorisationRequestXML{
		NS:                      AuthorisationNS,
		requestHeaderXML:        r.headerXML(),
		EVSEId:                  r.EVSEId.String(),
		UserIdType:              string(r.userIdFormat()),
		UserId:                  r.UserId.String(),
		RequestedServiceId:      r.RequestedServiceId.String(),
		ActionType:              &actionType,
		PartnerServiceSessionId: r.PartnerServiceSessionId.String(),
		BookingId:               r.BookingId,
	})
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func ParseGetServiceAuthorisationRequest(data []byte) (*GetServiceAuthorisationRequest, error) {
	var wire getServiceAuthorisationRequestXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := wire.validate(GetServiceAuthorisationFeatureName); err != nil {
		return nil, err
	}
	if wire.EVSEId == "" {
		return nil, missingElement(GetServiceAuthorisationFeatureName, "EVSEId")
	}
	if wire.UserId == "" {
		return nil, missingElement(GetServiceAuthorisationFeatureName, "userId")
	}
	if wire.RequestedServiceId == "" {
		return nil, missingElement(GetServiceAuthorisationFeatureName, "requestedServiceId")
	}
	if wire.ActionType == nil {
		return nil, missingElement(GetServiceAuthorisationFeatureName, "actionType")
	}
	return &GetServiceAuthorisationRequest{
		Request:                 wire.toRequest(),
		EVSEId:                  types.EVSEId(wire.EVSEId),
		UserIdFormat:            types.IdFormat(wire.UserIdType),
		UserId:                  types.UserId(wire.UserId),
		RequestedServiceId:      types.ServiceId(wire.RequestedServiceId),
		ActionType:              types.RemoteStartStopFrom(*wire.ActionType),
		PartnerServiceSessionId: types.PartnerSessionId(wire.PartnerServiceSessionId),
		BookingId:               wire.BookingId,
	}, nil
}

func TryParseGetServiceAuthorisationRequest(data []byte, onError func(error)) (*GetServiceAuthorisationRequest, bool) {
	return tryParse(onError, func() (*GetServiceAuthorisationRequest, error) {
		return ParseGetServiceAuthorisationRequest(data)
	})
}

func (r *GetServiceAuthorisationRequest) Equals(other *GetServiceAuthorisationRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.headerEquals(&other.Request) &&
		r.EVSEId == other.EVSEId &&
		r.userIdFormat() == other.userIdFormat() &&
		r.UserId == other.UserId &&
		r.RequestedServiceId == other.RequestedServiceId &&
		r.ActionType == other.ActionType &&
		r.PartnerServiceSessionId == other.PartnerServiceSessionId &&
		r.BookingId == other.BookingId
}

// GetServiceAuthorisationResponse carries the authorisation decision plus the
// session handle all later event reports and records refer to.
type GetServiceAuthorisationResponse struct {
	Request                  *GetServiceAuthorisationRequest
	TransactionId            types.TransactionId
	RequestStatus            types.RequestStatus
	AuthorisationValue       types.AuthorisationValue
	ServiceSessionId         types.ServiceSessionId
	IntermediateCDRRequested bool
	UserContractIdAlias      types.ContractId
	MeterLimits              []MeterReport
	Parameter                string
}

func (r *GetServiceAuthorisationResponse) GetFeatureName() string {
	return GetServiceAuthorisationFeatureName
}

type getServiceAuthorisationResponseXML struct {
	XMLName                  xml.Name         `xml:"eMIP_ToIOP_GetServiceAuthorisationResponse"`
	TransactionId            *string          `xml:"transactionId"`
	AuthorisationValue       *string          `xml:"authorisationValue"`
	ServiceSessionId         string           `xml:"serviceSessionId"`
	IntermediateCDRRequested bool             `xml:"intermediateCDRRequested"`
	UserContractIdAlias      string           `xml:"userContractIdAlias"`
	MeterLimits              []meterReportXML `xml:"meterLimitList>meterReport"`
	Parameter                string           `xml:"parameter"`
	RequestStatus            *string          `xml:"requestStatus"`
}

type GetServiceAuthorisationResponseParser func(*GetServiceAuthorisationResponse) (*GetServiceAuthorisationResponse, error)

func ParseGetServiceAuthorisationResponse(req *GetServiceAuthorisationRequest, data []byte, custom ...GetServiceAuthorisationResponseParser) (*GetServiceAuthorisationResponse, error) {
	var wire getServiceAuthorisationResponseXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if wire.AuthorisationValue == nil {
		return nil, missingElement(GetServiceAuthorisationFeatureName, "authorisationValue")
	}
	if wire.RequestStatus == nil {
		return nil, missingElement(GetServiceAuthorisationFeatureName, "requestStatus")
	}
	meterLimits, err := meterReportsFromXML(GetServiceAuthorisationFeatureName, wire.MeterLimits)
	if err != nil {
		return nil, err
	}
	resp := &GetServiceAuthorisationResponse{
		Request:                  req,
		TransactionId:            transactionIdOrZero(wire.TransactionId),
		RequestStatus:            types.RequestStatusFrom(*wire.RequestStatus),
		AuthorisationValue:       types.AuthorisationValueFrom(*wire.AuthorisationValue),
		ServiceSessionId:         types.ServiceSessionId(wire.ServiceSessionId),
		IntermediateCDRRequested: wire.IntermediateCDRRequested,
		UserContractIdAlias:      types.ContractId(wire.UserContractIdAlias),
		MeterLimits:              meterLimits,
		Parameter:                wire.Parameter,
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

func TryParseGetServiceAuthorisationResponse(req *GetServiceAuthorisationRequest, data []byte, onError func(error), custom ...GetServiceAuthorisationResponseParser) (*GetServiceAuthorisationResponse, bool) {
	return tryParse(onError, func() (*GetServiceAuthorisationResponse, error) {
		return ParseGetServiceAuthorisationResponse(req, data, custom...)
	})
}

type getServiceAuthorisationResponseOutXML struct {
	XMLName                  xml.Name         `xml:"eMIP_ToIOP_GetServiceAuthorisationResponse"`
	NS                       string           `xml:"xmlns,attr"`
	TransactionId            string           `xml:"transactionId"`
	AuthorisationValue       string           `xml:"authorisationValue"`
	ServiceSessionId         string           `xml:"serviceSessionId,omitempty"`
	IntermediateCDRRequested bool             `xml:"intermediateCDRRequested"`
	UserContractIdAlias      string           `xml:"userContractIdAlias,omitempty"`
	MeterLimits              []meterReportXML `xml:"meterLimitList>meterReport"`
	Parameter                string           `xml:"parameter,omitempty"`
	RequestStatus            string           `xml:"requestStatus"`
}

func (r *GetServiceAuthorisationResponse) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := xml.Marshal(getServiceAuthorisationResponseOutXML{
		NS:                       AuthorisationNS,
		TransactionId:            r.TransactionId.OrZero().String(),
		AuthorisationValue:       strconv.Itoa(r.AuthorisationValue.Number()),
		ServiceSessionId:         r.ServiceSessionId.String(),
		IntermediateCDRRequested: r.IntermediateCDRRequested,
		UserContractIdAlias:      r.UserContractIdAlias.String(),
		MeterLimits:              meterReportsToXML(r.MeterLimits),
		Parameter:                r.Parameter,
		RequestStatus:            strconv.Itoa(r.RequestStatus.Code()),
	})
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func (r *GetServiceAuthorisationResponse) Equals(other *GetServiceAuthorisationResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TransactionId == other.TransactionId &&
		r.RequestStatus == other.RequestStatus &&
		r.AuthorisationValue == other.AuthorisationValue &&
		r.ServiceSessionId == other.ServiceSessionId &&
		r.IntermediateCDRRequested == other.IntermediateCDRRequested &&
		r.UserContractIdAlias == other.UserContractIdAlias &&
		meterReportsEqual(r.MeterLimits, other.MeterLimits) &&
		r.Parameter == other.Parameter
}

type GetServiceAuthorisationResponseBuilder struct {
	Request                  *GetServiceAuthorisationRequest
	TransactionId            types.TransactionId
	RequestStatus            types.RequestStatus
	AuthorisationValue       types.AuthorisationValue
	ServiceSessionId         types.ServiceSessionId
	IntermediateCDRRequested bool
	UserContractIdAlias      types.ContractId
	MeterLimits              []MeterReport
	Parameter                string
}

func (r *GetServiceAuthorisationResponse) ToBuilder() *GetServiceAuthorisationResponseBuilder {
	return &GetServiceAuthorisationResponseBuilder{
		Request:                  r.Request,
		TransactionId:            r.TransactionId,
		RequestStatus:            r.RequestStatus,
		AuthorisationValue:       r.AuthorisationValue,
		ServiceSessionId:         r.ServiceSessionId,
		IntermediateCDRRequested: r.IntermediateCDRRequested,
		UserContractIdAlias:      r.UserContractIdAlias,
		MeterLimits:              r.MeterLimits,
		Parameter:                r.Parameter,
	}
}

func (b *GetServiceAuthorisationResponseBuilder) Build() *GetServiceAuthorisationResponse {
	return &GetServiceAuthorisationResponse{
		Request:                  b.Request,
		TransactionId:            b.TransactionId.OrZero(),
		RequestStatus:            b.RequestStatus,
		AuthorisationValue:       b.AuthorisationValue,
		ServiceSessionId:         b.ServiceSessionId,
		IntermediateCDRRequested: b.IntermediateCDRRequested,
		UserContractIdAlias:      b.UserContractIdAlias,
		MeterLimits:              b.MeterLimits,
		Parameter:                b.Parameter,
	}
}

func (b *GetServiceAuthorisationResponseBuilder) Equals(other *GetServiceAuthorisationResponseBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Build().Equals(other.Build())
}
