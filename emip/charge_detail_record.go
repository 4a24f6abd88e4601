package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"strconv"
)

const SetChargeDetailRecordFeatureName = "SetChargeDetailRecord"

var SetChargeDetailRecordAction = SOAPAction("SetChargeDetailRecord")

// ChargeDetailRecord is the billing-relevant summary of a charging session.
// It has no lifecycle of its own: it is built once and serialized as part of
// the enclosing request.
type ChargeDetailRecord struct {
	Nature              types.CDRNature
	ServiceSessionId    types.ServiceSessionId
	RequestedServiceId  types.ServiceId
	EVSEId              types.EVSEId
	UserIdFormat        types.IdFormat
	UserId              types.UserId
	UserContractIdAlias types.ContractId
	StartTime           *types.DateTime
	EndTime             *types.DateTime
	MeterReports        []MeterReport
}

func (cdr ChargeDetailRecord) userIdFormat() types.IdFormat {
	if cdr.UserIdFormat == "" {
		return types.IdFormatRFIDUID
	}
	return cdr.UserIdFormat
}

func (cdr ChargeDetailRecord) Equals(other ChargeDetailRecord) bool {
	return cdr.Nature == other.Nature &&
		cdr.ServiceSessionId == other.ServiceSessionId &&
		cdr.RequestedServiceId == other.RequestedServiceId &&
		cdr.EVSEId == other.EVSEId &&
		cdr.userIdFormat() == other.userIdFormat() &&
		cdr.UserId == other.UserId &&
		cdr.UserContractIdAlias == other.UserContractIdAlias &&
		cdr.StartTime.Equals(other.StartTime) &&
		cdr.EndTime.Equals(other.EndTime) &&
		meterReportsEqual(cdr.MeterReports, other.MeterReports)
}

type chargeDetailRecordXML struct {
	Nature              *string          `xml:"cdrNature"`
	ServiceSessionId    string           `xml:"serviceSessionId"`
	RequestedServiceId  string           `xml:"requestedServiceId"`
	EVSEId              string           `xml:"EVSEId"`
	UserIdType          string           `xml:"userIdType"`
	UserId              string           `xml:"userId"`
	UserContractIdAlias string           `xml:"userContractIdAlias,omitempty"`
	StartTime           *types.DateTime  `xml:"startTime"`
	EndTime             *types.DateTime  `xml:"endTime"`
	MeterReports        []meterReportXML `xml:"meterReportList>meterReport"`
}

func (cdr ChargeDetailRecord) toXML() chargeDetailRecordXML {
	nature := strconv.Itoa(cdr.Nature.Number())
	return chargeDetailRecordXML{
		Nature:              &nature,
		ServiceSessionId:    cdr.ServiceSessionId.String(),
		RequestedServiceId:  cdr.RequestedServiceId.String(),
		EVSEId:              cdr.EVSEId.String(),
		UserIdType:          string(cdr.userIdFormat()),
		UserId:              cdr.UserId.String(),
		UserContractIdAlias: cdr.UserContractIdAlias.String(),
		StartTime:           cdr.StartTime,
		EndTime:             cdr.EndTime,
		MeterReports:        meterReportsToXML(cdr.MeterReports),
	}
}

func (w chargeDetailRecordXML) toRecord() (ChargeDetailRecord, error) {
	const operation = SetChargeDetailRecordFeatureName
	if w.Nature == nil {
		return ChargeDetailRecord{}, missingElement(operation, "cdrNature")
	}
	if w.ServiceSessionId == "" {
		return ChargeDetailRecord{}, missingElement(operation, "serviceSessionId")
	}
	if w.EVSEId == "" {
		return ChargeDetailRecord{}, missingElement(operation, "EVSEId")
	}
	if w.UserId == "" {
		return ChargeDetailRecord{}, missingElement(operation, "userId")
	}
	if w.StartTime == nil {
		return ChargeDetailRecord{}, missingElement(operation, "startTime")
	}
	if w.EndTime == nil {
		return ChargeDetailRecord{}, missingElement(operation, "endTime")
	}
	meterReports, err := meterReportsFromXML(operation, w.MeterReports)
	if err != nil {
		return ChargeDetailRecord{}, err
	}
	return ChargeDetailRecord{
		Nature:              types.CDRNatureFrom(*w.Nature),
		ServiceSessionId:    types.ServiceSessionId(w.ServiceSessionId),
		RequestedServiceId:  types.ServiceId(w.RequestedServiceId),
		EVSEId:              types.EVSEId(w.EVSEId),
		UserIdFormat:        types.IdFormat(w.UserIdType),
		UserId:              types.UserId(w.UserId),
		UserContractIdAlias: types.ContractId(w.UserContractIdAlias),
		StartTime:           w.StartTime,
		EndTime:             w.EndTime,
		MeterReports:        meterReports,
	}, nil
}

type SetChargeDetailRecordRequest struct {
	Request
	ChargeDetailRecord ChargeDetailRecord
}

func (r *SetChargeDetailRecordRequest) GetFeatureName() string {
	return SetChargeDetailRecordFeatureName
}

type setChargeDetailRecordRequestXML struct {
	XMLName xml.Name `xml:"eMIP_ToIOP_SetChargeDetailRecordRequest"`
	NS      string   `xml:"xmlns,attr"`
	requestHeaderXML
	ChargeDetailRecord chargeDetailRecordXML `xml:"chargeDetailRecord"`
}

func (r *SetChargeDetailRecordRequest) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := xml.Marshal(setChargeDetailRecordRequestXML{
		NS:                 CDRNS,
		requestHeaderXML:   r.headerXML(),
		ChargeDetailRecord: r.ChargeDetailRecord.toXML(),
	})
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func ParseSetChargeDetailRecordRequest(data []byte) (*SetChargeDetailRecordRequest, error) {
	var wire setChargeDetailRecordRequestXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := wire.validate(SetChargeDetailRecordFeatureName); err != nil {
		return nil, err
	}
	record, err := wire.ChargeDetailRecord.toRecord()
	if err != nil {
		return nil, err
	}
	return &SetChargeDetailRecordRequest{
		Request:            wire.toRequest(),
		ChargeDetailRecord: record,
	}, nil
}

func TryParseSetChargeDetailRecordRequest(data []byte, onError func(error)) (*SetChargeDetailRecordRequest, bool) {
	return tryParse(onError, func() (*SetChargeDetailRecordRequest, error) {
		return ParseSetChargeDetailRecordRequest(data)
	})
}

func (r *SetChargeDetailRecordRequest) Equals(other *SetChargeDetailRecordRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.headerEquals(&other.Request) &&
		r.ChargeDetailRecord.Equals(other.ChargeDetailRecord)
}

type SetChargeDetailRecordResponse struct {
	Request       *SetChargeDetailRecordRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetChargeDetailRecordResponse) GetFeatureName() string {
	return SetChargeDetailRecordFeatureName
}

const setChargeDetailRecordResponseElement = "eMIP_ToIOP_SetChargeDetailRecordResponse"

type SetChargeDetailRecordResponseParser func(*SetChargeDetailRecordResponse) (*SetChargeDetailRecordResponse, error)

func ParseSetChargeDetailRecordResponse(req *SetChargeDetailRecordRequest, data []byte, custom ...SetChargeDetailRecordResponseParser) (*SetChargeDetailRecordResponse, error) {
	transactionId, status, err := parseAckResponse(SetChargeDetailRecordFeatureName, setChargeDetailRecordResponseElement, data)
	if err != nil {
		return nil, err
	}
	resp := &SetChargeDetailRecordResponse{
		Request:       req,
		TransactionId: transactionId,
		RequestStatus: status,
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

func TryParseSetChargeDetailRecordResponse(req *SetChargeDetailRecordRequest, data []byte, onError func(error), custom ...SetChargeDetailRecordResponseParser) (*SetChargeDetailRecordResponse, bool) {
	return tryParse(onError, func() (*SetChargeDetailRecordResponse, error) {
		return ParseSetChargeDetailRecordResponse(req, data, custom...)
	})
}

func (r *SetChargeDetailRecordResponse) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := marshalAckResponse(setChargeDetailRecordResponseElement, CDRNS, r.TransactionId, r.RequestStatus)
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func (r *SetChargeDetailRecordResponse) Equals(other *SetChargeDetailRecordResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TransactionId == other.TransactionId && r.RequestStatus == other.RequestStatus
}

type SetChargeDetailRecordResponseBuilder struct {
	Request       *SetChargeDetailRecordRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetChargeDetailRecordResponse) ToBuilder() *SetChargeDetailRecordResponseBuilder {
	return &SetChargeDetailRecordResponseBuilder{
		Request:       r.Request,
		TransactionId: r.TransactionId,
		RequestStatus: r.RequestStatus,
	}
}

func (b *SetChargeDetailRecordResponseBuilder) Build() *SetChargeDetailRecordResponse {
	return &SetChargeDetailRecordResponse{
		Request:       b.Request,
		TransactionId: b.TransactionId.OrZero(),
		RequestStatus: b.RequestStatus,
	}
}

func (b *SetChargeDetailRecordResponseBuilder) Equals(other *SetChargeDetailRecordResponseBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Build().Equals(other.Build())
}
