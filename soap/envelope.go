package soap

import (
	"bytes"
	"encoding/xml"
)

const EnvelopeNS = "http://www.w3.org/2003/05/soap-envelope"

type Envelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	Soap    string   `xml:"xmlns:soap,attr"`
	Body    Body
}

type Body struct {
	XMLName xml.Name `xml:"soap:Body"`
	Content []byte   `xml:",innerxml"`
}

// Fault is a SOAP 1.2 fault as reported inside a reply body.
type Fault struct {
	XMLName xml.Name `xml:"Fault"`
	Code    string   `xml:"Code>Value"`
	Reason  string   `xml:"Reason>Text"`
	Detail  string   `xml:"Detail"`
}

func NewEnvelope(content []byte) *Envelope {
	return &Envelope{
		Soap: EnvelopeNS,
		Body: Body{Content: content},
	}
}

// Wrap produces the complete SOAP document for an operation body.
func Wrap(content []byte) ([]byte, error) {
	data, err := xml.Marshal(NewEnvelope(content))
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

type envelopeIn struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Content []byte `xml:",innerxml"`
	} `xml:"Body"`
}

// Unwrap extracts the operation body from a reply envelope and detects a
// fault. The returned content is the inner XML of the body element.
func Unwrap(data []byte) ([]byte, *Fault, error) {
	var envelope envelopeIn
	if err := xml.Unmarshal(data, &envelope); err != nil {
		return nil, nil, err
	}
	content := bytes.TrimSpace(envelope.Body.Content)
	if rootName(content) == "Fault" {
		var fault Fault
		if err := xml.Unmarshal(content, &fault); err != nil {
			return nil, nil, err
		}
		return nil, &fault, nil
	}
	return content, nil, nil
}

func rootName(content []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	for {
		token, err := decoder.Token()
		if err != nil {
			return ""
		}
		if start, ok := token.(xml.StartElement); ok {
			return start.Name.Local
		}
	}
}
