package signer

// 证书元数据中签名人标识元素的本地名（忽略命名空间匹配）
const issuerNameTag = "X509IssuerName"

// IdentityRecord 从签名子部件证书元数据中恢复的一条标识（通常是证书颁发者名）
type IdentityRecord struct {
	RawIdentity string
}
