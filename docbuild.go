package docbuild

// DocxFromMarkdown converts markdown text to a Word package.
//
// Parsing is total: malformed constructs degrade to plain text, never to an
// error. Note that consecutive non-blank plain lines become separate
// paragraphs; the parser does not reflow them into one. Inline images in
// markdown are dropped from the rich output (use [Builder.Image] to embed
// images).
func DocxFromMarkdown(markdown string, opts ...BuildOption) ([]byte, error) {
	cfg := newBuildConfig(opts)
	els := elementsFromBlocks(parseBlocks(markdown, cfg.limits))
	parts, err := renderDocx(els, nil, nil, cfg)
	if err != nil {
		return nil, err
	}
	return buildArchive(parts, cfg.compression, cfg.limits)
}

// OdtFromMarkdown converts markdown text to an OpenDocument Text package.
// The same parsing notes as [DocxFromMarkdown] apply.
func OdtFromMarkdown(markdown string, opts ...BuildOption) ([]byte, error) {
	cfg := newBuildConfig(opts)
	els := elementsFromBlocks(parseBlocks(markdown, cfg.limits))
	parts, err := renderOdt(els, cfg)
	if err != nil {
		return nil, err
	}
	return buildArchive(parts, cfg.compression, cfg.limits)
}
