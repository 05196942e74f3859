package a2a

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestPartRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"text", `{"type":"text","text":"hi"}`},
		{"text with metadata", `{"type":"text","text":"hi","metadata":{"k":"v"}}`},
		{"file bytes", `{"type":"file","file":{"name":"a.txt","mimeType":"text/plain","bytes":"aGk="}}`},
		{"file uri", `{"type":"file","file":{"uri":"https://example.com/a.txt"}}`},
		{"data object", `{"type":"data","data":{"a":1}}`},
		{"data array", `{"type":"data","data":[1,2,3]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			part, err := UnmarshalPart([]byte(tc.json))
			if err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			data, err := json.Marshal(part)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}

			var want, got map[string]any
			if err := json.Unmarshal([]byte(tc.json), &want); err != nil {
				t.Fatal(err)
			}
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatal(err)
			}

			if !reflect.DeepEqual(want, got) {
				t.Fatalf("round-trip mismatch\nwant: %v\n got: %v", want, got)
			}
		})
	}
}

func TestUnmarshalPartDispatch(t *testing.T) {
	part, err := UnmarshalPart([]byte(`{"type":"text","text":"x"}`))
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	text, ok := part.(TextPart)
	if !ok {
		t.Fatalf("expected TextPart, got %T", part)
	}
	if text.Text != "x" {
		t.Errorf("text = %q, want %q", text.Text, "x")
	}
	if part.Type() != PartTypeText {
		t.Errorf("type = %q, want text", part.Type())
	}
}

func TestUnmarshalPartUnknownType(t *testing.T) {
	if _, err := UnmarshalPart([]byte(`{"type":"image","uri":"x"}`)); err == nil {
		t.Error("expected an error for an unknown part type")
	} else if !strings.Contains(err.Error(), "image") {
		t.Errorf("error should name the offending tag: %v", err)
	}
}

func TestUnmarshalPartMissingType(t *testing.T) {
	if _, err := UnmarshalPart([]byte(`{"text":"x"}`)); err == nil {
		t.Error("expected an error for a missing part type")
	}
}

func TestUnmarshalPartKeyTolerance(t *testing.T) {
	part, err := UnmarshalPart([]byte(`{"type":"file","file":{"mime_type":"text/plain","bytes":"aGk="}}`))
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	file := part.(FilePart)
	if file.File.MimeType != "text/plain" {
		t.Errorf("mimeType = %q, want snake_case key to be accepted", file.File.MimeType)
	}
}

func TestFileContentValidate(t *testing.T) {
	cases := []struct {
		name    string
		file    FileContent
		wantErr bool
	}{
		{"bytes only", FileContent{Bytes: "aGk="}, false},
		{"uri only", FileContent{URI: "https://example.com/a"}, false},
		{"both", FileContent{Bytes: "aGk=", URI: "https://example.com/a"}, true},
		{"neither", FileContent{Name: "a.txt"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.file.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr && !strings.Contains(err.Error(), "exactly one of bytes or uri") {
				t.Errorf("unexpected message: %v", err)
			}
		})
	}
}

func TestFileContentUnmarshalRejectsInvalid(t *testing.T) {
	var part FilePart
	err := json.Unmarshal([]byte(`{"file":{"bytes":"aGk=","uri":"https://example.com/a"}}`), &part)
	if err == nil {
		t.Error("expected unmarshal to reject a file with both bytes and uri")
	}
}

func TestUnmarshalPartRejectsInvalidFileContent(t *testing.T) {
	payloads := []string{
		`{"type":"file"}`,
		`{"type":"file","file":{}}`,
		`{"type":"file","file":{"name":"a.txt"}}`,
	}

	for _, payload := range payloads {
		_, err := UnmarshalPart([]byte(payload))
		if err == nil {
			t.Errorf("expected %s to be rejected", payload)
		} else if !strings.Contains(err.Error(), "exactly one of bytes or uri") {
			t.Errorf("unexpected message for %s: %v", payload, err)
		}
	}
}

func TestUnmarshalPartRejectsScalarData(t *testing.T) {
	payloads := []string{
		`{"type":"data","data":"x"}`,
		`{"type":"data","data":3}`,
		`{"type":"data","data":true}`,
		`{"type":"data"}`,
	}

	for _, payload := range payloads {
		_, err := UnmarshalPart([]byte(payload))
		if err == nil {
			t.Errorf("expected %s to be rejected", payload)
		} else if !strings.Contains(err.Error(), "object or array") {
			t.Errorf("unexpected message for %s: %v", payload, err)
		}
	}
}

func TestNewFilePartEncodesBase64(t *testing.T) {
	part := NewFilePart("a.txt", "text/plain", []byte("hi"))

	if part.File.Bytes != "aGk=" {
		t.Errorf("bytes = %q, want base64 of content", part.File.Bytes)
	}
	if err := part.File.Validate(); err != nil {
		t.Errorf("constructed part should validate: %v", err)
	}
}

func TestPartMetadataOmittedWhenAbsent(t *testing.T) {
	data, err := json.Marshal(NewTextPart("hi"))
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(data), "metadata") {
		t.Errorf("absent metadata must be omitted, got %s", data)
	}
}
