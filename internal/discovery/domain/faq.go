package domain

// ReturnPolicyAnswer 退货政策固定答案，命中政策类提问时直接返回，不走搜索
const ReturnPolicyAnswer = "Return gently used product(s) within 30 days of receipt. " +
	"We can't offer exchanges right now. Use the prepaid label in your package and drop off " +
	"at any USPS or FedEx location. Only items bought on our store can be returned—not items " +
	"from other retailers."

// ReturnPolicyFollowup 政策答案附带的追问
type ReturnPolicyFollowup struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ReturnPolicyFollowups 追问列表，顺序即展示顺序
var ReturnPolicyFollowups = []ReturnPolicyFollowup{
	{
		Question: "Can I return an empty box?",
		Answer: "Empty containers are not accepted for a refund. When returning a set or kit, " +
			"all contents from the original set are required; partial items will not be refunded.",
	},
	{
		Question: "How long for a refund?",
		Answer: "After your return arrives, allow up to 10 business days for processing. " +
			"Refunds go to your original payment method (item + sales tax; shipping not refunded). " +
			"You'll get a confirmation email when done.",
	},
}

// LookupFollowup 按问题原文查找追问答案
func LookupFollowup(question string) (ReturnPolicyFollowup, bool) {
	for _, f := range ReturnPolicyFollowups {
		if f.Question == question {
			return f, true
		}
	}
	return ReturnPolicyFollowup{}, false
}
