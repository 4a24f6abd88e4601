package cpo

import "emipcpo/emip"

// Customizer holds the per-operation interception hooks. Request mappers may
// substitute a transformed request before anything is sent; serializers
// post-process the marshalled element; response parsers may override the
// structurally parsed response. All hooks default to identity by being nil.
// Like subscriptions, hooks are startup configuration.
type Customizer struct {
	HeartbeatRequestMapper  func(*emip.HeartbeatRequest) *emip.HeartbeatRequest
	HeartbeatSerializer     emip.Serializer
	HeartbeatResponseParser emip.HeartbeatResponseParser

	SetChargingPoolAvailabilityStatusRequestMapper  func(*emip.SetChargingPoolAvailabilityStatusRequest) *emip.SetChargingPoolAvailabilityStatusRequest
	SetChargingPoolAvailabilityStatusSerializer     emip.Serializer
	SetChargingPoolAvailabilityStatusResponseParser emip.SetChargingPoolAvailabilityStatusResponseParser

	SetChargingStationAvailabilityStatusRequestMapper  func(*emip.SetChargingStationAvailabilityStatusRequest) *emip.SetChargingStationAvailabilityStatusRequest
	SetChargingStationAvailabilityStatusSerializer     emip.Serializer
	SetChargingStationAvailabilityStatusResponseParser emip.SetChargingStationAvailabilityStatusResponseParser

	SetEVSEAvailabilityStatusRequestMapper  func(*emip.SetEVSEAvailabilityStatusRequest) *emip.SetEVSEAvailabilityStatusRequest
	SetEVSEAvailabilityStatusSerializer     emip.Serializer
	SetEVSEAvailabilityStatusResponseParser emip.SetEVSEAvailabilityStatusResponseParser

	SetChargingConnectorAvailabilityStatusRequestMapper  func(*emip.SetChargingConnectorAvailabilityStatusRequest) *emip.SetChargingConnectorAvailabilityStatusRequest
	SetChargingConnectorAvailabilityStatusSerializer     emip.Serializer
	SetChargingConnectorAvailabilityStatusResponseParser emip.SetChargingConnectorAvailabilityStatusResponseParser

	SetEVSEBusyStatusRequestMapper  func(*emip.SetEVSEBusyStatusRequest) *emip.SetEVSEBusyStatusRequest
	SetEVSEBusyStatusSerializer     emip.Serializer
	SetEVSEBusyStatusResponseParser emip.SetEVSEBusyStatusResponseParser

	SetEVSESyntheticStatusRequestMapper  func(*emip.SetEVSESyntheticStatusRequest) *emip.SetEVSESyntheticStatusRequest
	SetEVSESyntheticStatusSerializer     emip.Serializer
	SetEVSESyntheticStatusResponseParser emip.SetEVSESyntheticStatusResponseParser

	GetServiceAuthorisationRequestMapper  func(*emip.GetServiceAuthorisationRequest) *emip.GetServiceAuthorisationRequest
	GetServiceAuthorisationSerializer     emip.Serializer
	GetServiceAuthorisationResponseParser emip.GetServiceAuthorisationResponseParser

	SetSessionEventReportRequestMapper  func(*emip.SetSessionEventReportRequest) *emip.SetSessionEventReportRequest
	SetSessionEventReportSerializer     emip.Serializer
	SetSessionEventReportResponseParser emip.SetSessionEventReportResponseParser

	SetChargeDetailRecordRequestMapper  func(*emip.SetChargeDetailRecordRequest) *emip.SetChargeDetailRecordRequest
	SetChargeDetailRecordSerializer     emip.Serializer
	SetChargeDetailRecordResponseParser emip.SetChargeDetailRecordResponseParser
}
