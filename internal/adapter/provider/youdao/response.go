package youdao

import "encoding/json"

// apiEnvelope holds the raw top-level sections of a jsonapi response.
// Each section is decoded separately so that one malformed section cannot
// affect the decoding of another.
type apiEnvelope struct {
	WebTrans      json.RawMessage `json:"web_trans"`
	BilingualPart json.RawMessage `json:"blng_sents_part"`
	Baike         json.RawMessage `json:"baike"`
}

// apiWebTrans is the "related web translations" section.
type apiWebTrans struct {
	WebTranslation *[]apiWebTranslation `json:"web-translation"`
}

type apiWebTranslation struct {
	Key   *string     `json:"key"`
	Trans *[]apiTrans `json:"trans"`
}

type apiTrans struct {
	Value *string `json:"value"`
}

// apiBilingualPart is the "bilingual example sentences" section.
type apiBilingualPart struct {
	SentencePair *[]apiSentencePair `json:"sentence-pair"`
}

type apiSentencePair struct {
	Sentence            *string `json:"sentence"`
	SentenceTranslation *string `json:"sentence-translation"`
}

// apiBaike is the encyclopedia section. One source name covers all summaries.
type apiBaike struct {
	Summarys *[]apiSummary `json:"summarys"`
	Source   *apiSource    `json:"source"`
}

type apiSummary struct {
	Summary *string `json:"summary"`
}

type apiSource struct {
	Name *string `json:"name"`
}
