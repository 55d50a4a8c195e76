package notes

// BatchItem is the outcome of one URL in a batch run: either a summary or a
// recorded failure. Failures never cross the batch boundary as errors.
type BatchItem struct {
	// URL is the input URL this item corresponds to.
	URL string `json:"url"`

	// Summary is set when the URL's pipeline succeeded.
	Summary *Summary `json:"summary,omitempty"`

	// ErrCode and ErrMessage describe the failure when Summary is nil.
	ErrCode    string `json:"errCode,omitempty"`
	ErrMessage string `json:"errMessage,omitempty"`
}

// OK reports whether the item's pipeline succeeded.
func (it *BatchItem) OK() bool {
	return it.Summary != nil
}

// FailedItem records a per-URL pipeline failure as a batch item.
func FailedItem(url string, err error) BatchItem {
	return BatchItem{
		URL:        url,
		ErrCode:    ErrorCode(err),
		ErrMessage: ErrorMessage(err),
	}
}

// BatchReport is the ordered result of summarizing many URLs. Items appear
// in input order regardless of completion order.
type BatchReport struct {
	// Items holds one entry per input URL, in input order.
	Items []BatchItem `json:"items"`

	// Markdown is the merged study guide: successful summaries under
	// per-URL headings, followed by references and a failure appendix.
	Markdown string `json:"markdown"`
}

// Failed returns the number of failed items.
func (r *BatchReport) Failed() int {
	var n int
	for i := range r.Items {
		if !r.Items[i].OK() {
			n++
		}
	}
	return n
}
