package emip

import (
	"emipcpo/types"
	"strconv"
)

// MeterReport is a single measured quantity, embedded in authorisation
// responses (as a limit) and in charge detail records (as a reading).
type MeterReport struct {
	Value string
	Unit  string
	Type  types.MeterType
}

func (m MeterReport) Equals(other MeterReport) bool {
	return m == other
}

type meterReportXML struct {
	Value *string `xml:"meterValue"`
	Unit  string  `xml:"meterUnit,omitempty"`
	Type  *string `xml:"meterType"`
}

func (m MeterReport) toXML() meterReportXML {
	meterType := strconv.Itoa(m.Type.Number())
	value := m.Value
	return meterReportXML{Value: &value, Unit: m.Unit, Type: &meterType}
}

func (w meterReportXML) toMeterReport(operation string) (MeterReport, error) {
	if w.Value == nil {
		return MeterReport{}, missingElement(operation, "meterValue")
	}
	if w.Type == nil {
		return MeterReport{}, missingElement(operation, "meterType")
	}
	return MeterReport{
		Value: *w.Value,
		Unit:  w.Unit,
		Type:  types.MeterTypeFrom(*w.Type),
	}, nil
}

func meterReportsToXML(reports []MeterReport) []meterReportXML {
	if len(reports) == 0 {
		return nil
	}
	wire := make([]meterReportXML, 0, len(reports))
	for _, report := range reports {
		wire = append(wire, report.toXML())
	}
	return wire
}

func meterReportsFromXML(operation string, wire []meterReportXML) ([]MeterReport, error) {
	if len(wire) == 0 {
		return nil, nil
	}
	reports := make([]MeterReport, 0, len(wire))
	for _, w := range wire {
		report, err := w.toMeterReport(operation)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func meterReportsEqual(a, b []MeterReport) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
