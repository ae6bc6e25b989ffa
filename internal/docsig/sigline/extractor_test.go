package sigline_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/kashguard/go-docsig/internal/docsig/sigline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseXML(t *testing.T, raw string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(raw))
	return doc
}

func TestExtract_DocumentOrder(t *testing.T) {
	doc := parseXML(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://example.com/w" xmlns:o="urn:schemas-microsoft-com:office:office">
  <w:body>
    <w:p><o:signatureline o:suggestedsigner="Alice" o:suggestedsigneremail="alice@example.com"/></w:p>
    <w:p>
      <w:r><o:signatureline o:suggestedsigner="Bob"/></w:r>
    </w:p>
  </w:body>
</w:document>`)

	lines := sigline.Extract(doc)
	require.Len(t, lines, 2)

	assert.Equal(t, "Alice", lines[0].SuggestedSigner)
	assert.Equal(t, "alice@example.com", lines[0].SuggestedSignerEmail)
	assert.Equal(t, 0, lines[0].Order)

	assert.Equal(t, "Bob", lines[1].SuggestedSigner)
	assert.Equal(t, sigline.UnknownValue, lines[1].SuggestedSignerEmail)
	assert.Equal(t, 1, lines[1].Order)
}

func TestExtract_MissingAndBlankAttributesDefaultToUnknown(t *testing.T) {
	// 属性缺失或为空白不是错误，统一回退为 "Unknown"
	doc := parseXML(t, `<?xml version="1.0"?>
<root xmlns:o="urn:schemas-microsoft-com:office:office">
  <o:signatureline/>
  <o:signatureline o:suggestedsigner="  " o:suggestedsigneremail=""/>
</root>`)

	lines := sigline.Extract(doc)
	require.Len(t, lines, 2)

	for _, line := range lines {
		assert.Equal(t, sigline.UnknownValue, line.SuggestedSigner)
		assert.Equal(t, sigline.UnknownValue, line.SuggestedSignerEmail)
	}
}

func TestExtract_IgnoresOtherNamespaces(t *testing.T) {
	// 只匹配 Office 绘图命名空间下的 signatureline 元素
	doc := parseXML(t, `<?xml version="1.0"?>
<root xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:x="http://example.com/other">
  <x:signatureline x:suggestedsigner="Eve"/>
  <signatureline/>
  <o:signatureline o:suggestedsigner="Alice"/>
</root>`)

	lines := sigline.Extract(doc)
	require.Len(t, lines, 1)
	assert.Equal(t, "Alice", lines[0].SuggestedSigner)
}

func TestExtract_UnprefixedAttributeFallback(t *testing.T) {
	// 部分生成器省略属性前缀
	doc := parseXML(t, `<?xml version="1.0"?>
<root xmlns:o="urn:schemas-microsoft-com:office:office">
  <o:signatureline suggestedsigner="Carol" suggestedsigneremail="carol@example.com"/>
</root>`)

	lines := sigline.Extract(doc)
	require.Len(t, lines, 1)
	assert.Equal(t, "Carol", lines[0].SuggestedSigner)
	assert.Equal(t, "carol@example.com", lines[0].SuggestedSignerEmail)
}

func TestExtract_NoSignatureLines(t *testing.T) {
	doc := parseXML(t, `<?xml version="1.0"?><root><child/></root>`)

	lines := sigline.Extract(doc)
	assert.Empty(t, lines)
}
