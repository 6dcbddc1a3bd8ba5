package assessment

import "github.com/avargas/hireflow/internal/types"

// Bank questions used when a generation call fails. IDs are assigned by the
// caller.
var fallbackCodingQuestions = []types.CodingQuestion{
	{
		Text:          "A function must deduplicate a large slice of strings while preserving first-seen order. Which approach is correct and efficient?",
		Difficulty:    "medium",
		Score:         10,
		Options:       []string{"Sort the slice, then remove adjacent duplicates", "Track seen values in a map while appending unseen ones to a result slice", "Compare every pair of elements and delete matches in place", "Convert the slice to a map and back"},
		CorrectOption: 1,
		Explanation:   "A seen-map with an ordered append preserves order in O(n); sorting or map round-trips lose the original order.",
		SkillsTested:  []string{"data structures", "algorithmic complexity"},
	},
	{
		Text:          "Two goroutines increment the same counter without synchronization. What is the outcome?",
		Difficulty:    "medium",
		Score:         10,
		Options:       []string{"The final count is always correct", "A data race; the final count is undefined", "The runtime serializes the writes", "A compile-time error"},
		CorrectOption: 1,
		Explanation:   "Unsynchronized concurrent writes are a data race; results are undefined and the race detector flags them.",
		SkillsTested:  []string{"concurrency"},
	},
	{
		Text:          "An HTTP handler reads a request body and forgets to close it. What is the consequence on the server side?",
		Difficulty:    "easy",
		Score:         10,
		Options:       []string{"Nothing; the server closes request bodies automatically", "A memory leak on every request", "The response is never sent", "The connection is reset"},
		CorrectOption: 0,
		Explanation:   "The server closes the request body when the handler returns; clients, not servers, must close response bodies.",
		SkillsTested:  []string{"http", "resource management"},
	},
	{
		Text:          "Which index best serves the query `WHERE tenant_id = ? AND created_at > ? ORDER BY created_at`?",
		Difficulty:    "medium",
		Score:         10,
		Options:       []string{"(created_at)", "(tenant_id, created_at)", "(created_at, tenant_id)", "Separate indexes on each column"},
		CorrectOption: 1,
		Explanation:   "Equality column first, then the range/order column, lets one composite index satisfy both the filter and the sort.",
		SkillsTested:  []string{"sql", "indexing"},
	},
	{
		Text:          "A cache returns stale data after the backing record is updated. Which strategy prevents this with the least coordination?",
		Difficulty:    "medium",
		Score:         10,
		Options:       []string{"Longer TTLs", "Invalidate or overwrite the cache entry on write", "Read-through on every request", "Disable caching for updated records forever"},
		CorrectOption: 1,
		Explanation:   "Write-path invalidation keeps the cache coherent; TTL tuning only narrows the staleness window.",
		SkillsTested:  []string{"caching"},
	},
}

var fallbackSystemDesignQuestions = []types.SystemDesignQuestion{
	{
		Text:               "Design a URL shortener serving 100M redirects per day.",
		Difficulty:         "hard",
		Score:              25,
		Scenario:           "Peak traffic is 5,000 redirects/sec with a 200:1 read-to-write ratio. Short links must survive a regional outage.",
		Requirements:       []string{"p99 redirect latency under 50ms", "collision-free short codes", "multi-region availability"},
		ExpectedComponents: []string{"key generation service", "cache", "replicated datastore", "load balancer", "analytics pipeline"},
		EvaluationCriteria: []string{"capacity estimation", "datastore choice and schema", "failure handling"},
	},
	{
		Text:               "Design a notification fan-out service for a social product.",
		Difficulty:         "hard",
		Score:              25,
		Scenario:           "A post by a user with 2M followers must reach all followers within a minute across push, email, and in-app channels.",
		Requirements:       []string{"at-least-once delivery", "per-user channel preferences", "burst absorption"},
		ExpectedComponents: []string{"message queue", "worker pool", "preference store", "rate limiter", "dead letter queue"},
		EvaluationCriteria: []string{"queueing topology", "idempotency handling", "backpressure strategy"},
	},
}

var fallbackBehavioralQuestions = []types.BehavioralQuestion{
	{
		Text:              "Tell me about a time you disagreed with a technical decision your team made. What did you do?",
		Difficulty:        "medium",
		Score:             15,
		Context:           "Looks for constructive dissent and commitment after the decision.",
		EvaluationPoints:  []string{"specific situation", "how the disagreement was raised", "outcome and follow-through"},
		PassionIndicators: []string{"ownership of the outcome", "curiosity about the other position"},
	},
	{
		Text:              "Describe a production incident you were involved in. What was your role and what changed afterwards?",
		Difficulty:        "medium",
		Score:             15,
		Context:           "Looks for calm under pressure and systemic follow-up.",
		EvaluationPoints:  []string{"clear incident narrative", "personal contribution", "postmortem actions"},
		PassionIndicators: []string{"blameless framing", "interest in prevention"},
	},
	{
		Text:              "What is a piece of technology you learned recently on your own initiative, and why?",
		Difficulty:        "easy",
		Score:             15,
		Context:           "Looks for self-directed learning.",
		EvaluationPoints:  []string{"concrete motivation", "depth of the learning", "application to real work"},
		PassionIndicators: []string{"unprompted depth", "enthusiasm for the subject"},
	},
}
