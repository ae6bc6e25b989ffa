package correlate

import (
	"strings"

	"github.com/kashguard/go-docsig/internal/docsig/sigline"
	"github.com/kashguard/go-docsig/internal/docsig/signer"
)

// NameContainmentHeuristic 判断一条签名人标识是否匹配签名行的建议签名人：
// 大小写不敏感的子串包含。建议签名人是创作时填写的自由文本，
// 证书颁发者串通常内嵌显示名，不能期望精确相等。
// 这是文本层面的启发式，不是加密学验证；替换为真正的证书校验时只需改这里。
func NameContainmentHeuristic(rawIdentity, suggestedSigner string) bool {
	return strings.Contains(strings.ToLower(rawIdentity), strings.ToLower(suggestedSigner))
}

// Correlate 将签名行与签名人标识集合做关联，产出按文档顺序的状态列表
// 一个签名行 Signed=true 当且仅当签名源容器存在，且至少一条标识匹配该行
// 建议签名人为回退值 "Unknown" 时仍按字面匹配（已知的启发式副作用，不另行防护）
func Correlate(lines []sigline.SignatureLine, records []signer.IdentityRecord, isDigitallySigned bool) []SignatureStatus {
	statuses := make([]SignatureStatus, 0, len(lines))

	for _, line := range lines {
		signed := false
		if isDigitallySigned {
			for _, record := range records {
				if NameContainmentHeuristic(record.RawIdentity, line.SuggestedSigner) {
					signed = true
					break
				}
			}
		}

		statuses = append(statuses, SignatureStatus{
			SuggestedSigner: line.SuggestedSigner,
			Email:           line.SuggestedSignerEmail,
			Signed:          signed,
		})
	}

	return statuses
}

// FirstUnsigned 返回状态列表中第一个未签名的条目，全部已签名或列表为空时返回 nil
func FirstUnsigned(statuses []SignatureStatus) *SignatureStatus {
	for i := range statuses {
		if !statuses[i].Signed {
			return &statuses[i]
		}
	}

	return nil
}
