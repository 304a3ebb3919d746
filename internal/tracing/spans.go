package tracing

// Span attribute keys.
const (
	AttrRequestID  = "http.request_id"
	AttrMethod     = "http.request.method"
	AttrRoute      = "http.route"
	AttrPath       = "url.path"
	AttrStatusCode = "http.response.status_code"

	AttrEntity   = "jassbot.entity"
	AttrQuery    = "jassbot.query"
	AttrLanguage = "jassbot.language"
	AttrBlocks   = "jassbot.blocks"
	AttrTokens   = "jassbot.tokens"
)

// Span names.
const (
	SpanPrefixHTTP    = "http."
	SpanHighlight     = "syntax.highlight"
	SpanSearch        = "jassbot.search"
	SpanRenderDoc     = "server.render_doc"
	SpanReloadVocab   = "server.reload_vocabulary"
	EventCacheHit     = "cache.hit"
	EventCacheMiss    = "cache.miss"
	EventNotModified  = "http.not_modified"
	EventBlockSkipped = "syntax.block_skipped"
)
