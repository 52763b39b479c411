package ports

// TextGenerator supplies the random names and placeholder text used to
// populate folders.
type TextGenerator interface {
	// Paragraph returns one short paragraph of English-like text.
	Paragraph() string
	// FolderName returns a company-style name with words joined by underscores.
	FolderName() string
	// FileName returns a file-system style name such as "report.pdf".
	FileName() string
}
