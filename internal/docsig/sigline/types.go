package sigline

// Office 绘图标记命名空间（签名行元素及其属性所在的命名空间）
const officeNamespaceURI = "urn:schemas-microsoft-com:office:office"

const (
	signatureLineTag         = "signatureline"
	suggestedSignerAttr      = "suggestedsigner"
	suggestedSignerEmailAttr = "suggestedsigneremail"
)

// UnknownValue 属性缺失或为空时的回退值（这是约定的回退策略，不是错误）
const UnknownValue = "Unknown"

// SignatureLine 文档正文中声明的一个签名占位符
type SignatureLine struct {
	SuggestedSigner      string
	SuggestedSignerEmail string
	// Order 按文档顺序的位置，"第一个未签名" 语义依赖它
	Order int
}
