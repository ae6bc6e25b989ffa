package correlate

// SignatureStatus 一个签名行的关联结果
type SignatureStatus struct {
	SuggestedSigner string
	Email           string
	Signed          bool
}
