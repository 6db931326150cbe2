package parser

import (
	"strings"

	"procura/internal/port"
)

// maxDocumentChars bounds the document text substituted into the prompt.
// Upstream upload limits keep most documents far below this.
const maxDocumentChars = 200000

const documentPlaceholder = "<<<PDF_TEXT_HERE>>>"

const systemInstructions = `You are a procurement document extraction assistant. You read raw text extracted from RFQ and purchase-request PDFs and return the requested line items as JSON. You respond with JSON only: no markdown formatting, no code fences, no explanation.`

const extractionTemplate = `Extract every material line item from the procurement document text below.

Return a single JSON object of this exact shape:
{
  "items": [
    {
      "description_raw": "",
      "size_raw": "",
      "quantity_raw": "",
      "uom_raw": ""
    }
  ]
}

RULES:
- Extract EVERY line item. Do not skip, summarize, or merge items.
- Copy descriptions, sizes, quantities, and units of measure exactly as written in the document, including non-English text.
- If a field is not present for an item, use an empty string.
- If the text contains no recognizable line items, return {"items": []}.

DOCUMENT TEXT:
<<<PDF_TEXT_HERE>>>`

// BuildExtractionPrompt substitutes the document text into the extraction
// template and pairs it with the fixed system instructions. The text is
// inserted as-is; the completion request carries it as a structured message
// field, so no escaping is applied.
func BuildExtractionPrompt(documentText string) port.Prompt {
	if len(documentText) > maxDocumentChars {
		documentText = documentText[:maxDocumentChars]
	}
	return port.Prompt{
		System: systemInstructions,
		User:   strings.Replace(extractionTemplate, documentPlaceholder, documentText, 1),
	}
}
