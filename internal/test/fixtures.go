package test

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// DocumentFixture describes an in-memory OPC word-processing document used by
// tests: a main body part plus an optional digital-signature-origin structure.
type DocumentFixture struct {
	BodyXML             string
	WithSignatureOrigin bool
	SignaturePartsXML   []string
}

// Build assembles the fixture into OPC (zip) bytes.
func (f DocumentFixture) Build(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	writeEntry(t, zw, "[Content_Types].xml", contentTypesXML)
	writeEntry(t, zw, "word/document.xml", f.BodyXML)

	if f.WithSignatureOrigin {
		writeEntry(t, zw, "_xmlsignatures/origin.sigs", "")
		for i, partXML := range f.SignaturePartsXML {
			writeEntry(t, zw, fmt.Sprintf("_xmlsignatures/sig%d.xml", i+1), partXML)
		}
	}

	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func writeEntry(t *testing.T, zw *zip.Writer, name string, content string) {
	t.Helper()

	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="xml" ContentType="application/xml"/>
  <Default Extension="sigs" ContentType="application/vnd.openxmlformats-package.digital-signature-origin"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

// BodyWithSignatureLines renders a WordprocessingML body declaring one
// signature line per entry. An empty signer or email is emitted as a missing
// attribute.
func BodyWithSignatureLines(entries ...SignatureLineEntry) string {
	body := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:v="urn:schemas-microsoft-com:vml" xmlns:o="urn:schemas-microsoft-com:office:office"><w:body>`
	for _, entry := range entries {
		body += `<w:p><w:r><w:pict><v:shape><o:signatureline v:ext="edit"`
		if entry.Signer != "" {
			body += ` o:suggestedsigner="` + entry.Signer + `"`
		}
		if entry.Email != "" {
			body += ` o:suggestedsigneremail="` + entry.Email + `"`
		}
		body += `/></v:shape></w:pict></w:r></w:p>`
	}
	body += `</w:body></w:document>`

	return body
}

// SignatureLineEntry is one declared signature line for BodyWithSignatureLines.
type SignatureLineEntry struct {
	Signer string
	Email  string
}

// SignaturePartWithIssuers renders a signature sub-part XML containing one
// X509IssuerName element per issuer.
func SignaturePartWithIssuers(issuers ...string) string {
	part := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Signature xmlns="http://www.w3.org/2000/09/xmldsig#"><KeyInfo><X509Data>`
	for _, issuer := range issuers {
		part += `<X509IssuerSerial><X509IssuerName>` + issuer + `</X509IssuerName><X509SerialNumber>1</X509SerialNumber></X509IssuerSerial>`
	}
	part += `</X509Data></KeyInfo></Signature>`

	return part
}
