package soap

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrapProducesEnvelope(t *testing.T) {
	content := []byte(`<ping xmlns="urn:test">hello</ping>`)
	document, err := Wrap(content)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	text := string(document)
	if !strings.HasPrefix(text, "<?xml") {
		t.Error("missing xml declaration")
	}
	if !strings.Contains(text, `xmlns:soap="`+EnvelopeNS+`"`) {
		t.Error("missing soap namespace")
	}
	if !bytes.Contains(document, content) {
		t.Error("operation body must pass through unmodified")
	}
}

func TestUnwrapReturnsBody(t *testing.T) {
	document := []byte(`<?xml version="1.0"?>
<soap:Envelope xmlns:soap="` + EnvelopeNS + `">
	<soap:Body>
		<reply xmlns="urn:test"><value>7</value></reply>
	</soap:Body>
</soap:Envelope>`)
	content, fault, err := Unwrap(document)
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if fault != nil {
		t.Fatalf("unexpected fault: %+v", fault)
	}
	if !strings.Contains(string(content), "<value>7</value>") {
		t.Fatalf("body lost: %s", content)
	}
}

func TestUnwrapDetectsFault(t *testing.T) {
	document := []byte(`<?xml version="1.0"?>
<env:Envelope xmlns:env="` + EnvelopeNS + `">
	<env:Body>
		<env:Fault>
			<env:Code><env:Value>env:Receiver</env:Value></env:Code>
			<env:Reason><env:Text>boom</env:Text></env:Reason>
		</env:Fault>
	</env:Body>
</env:Envelope>`)
	_, fault, err := Unwrap(document)
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if fault == nil {
		t.Fatal("fault not detected")
	}
	if fault.Code != "env:Receiver" {
		t.Errorf("fault code = %q", fault.Code)
	}
	if fault.Reason != "boom" {
		t.Errorf("fault reason = %q", fault.Reason)
	}
}

func TestUnwrapRoundTrip(t *testing.T) {
	content := []byte(`<op xmlns="urn:test"><a>1</a></op>`)
	document, err := Wrap(content)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	got, fault, err := Unwrap(document)
	if err != nil || fault != nil {
		t.Fatalf("Unwrap: %v %v", err, fault)
	}
	if !bytes.Equal(bytes.TrimSpace(got), content) {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestUnwrapRejectsMalformed(t *testing.T) {
	if _, _, err := Unwrap([]byte("this is not xml")); err == nil {
		t.Fatal("expected error")
	}
}
