package ops

import (
	ptslv1 "github.com/louisbranch/ptsl/api/ptsl/v1"
)

// Cut removes the edit selection to the clipboard.
type Cut struct {
	Base
}

func (*Cut) CommandID() ptslv1.CommandID { return ptslv1.CommandCut }

// Copy copies the edit selection to the clipboard.
type Copy struct {
	Base
}

func (*Copy) CommandID() ptslv1.CommandID { return ptslv1.CommandCopy }

// Paste pastes the clipboard at the edit insertion point.
type Paste struct {
	Base
}

func (*Paste) CommandID() ptslv1.CommandID { return ptslv1.CommandPaste }

// Clear deletes the edit selection.
type Clear struct {
	Base
}

func (*Clear) CommandID() ptslv1.CommandID { return ptslv1.CommandClear }

// CutSpecial cuts only the selected automation data.
type CutSpecial struct {
	Base
	Request *ptslv1.CutSpecialRequestBody
}

func (*CutSpecial) CommandID() ptslv1.CommandID { return ptslv1.CommandCutSpecial }

func (o *CutSpecial) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// CopySpecial copies only the selected automation data.
type CopySpecial struct {
	Base
	Request *ptslv1.CopySpecialRequestBody
}

func (*CopySpecial) CommandID() ptslv1.CommandID { return ptslv1.CommandCopySpecial }

func (o *CopySpecial) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// PasteSpecial pastes with the selected merge behavior.
type PasteSpecial struct {
	Base
	Request *ptslv1.PasteSpecialRequestBody
}

func (*PasteSpecial) CommandID() ptslv1.CommandID { return ptslv1.CommandPasteSpecial }

func (o *PasteSpecial) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}

// ClearSpecial clears only the selected automation data.
type ClearSpecial struct {
	Base
	Request *ptslv1.ClearSpecialRequestBody
}

func (*ClearSpecial) CommandID() ptslv1.CommandID { return ptslv1.CommandClearSpecial }

func (o *ClearSpecial) RequestBody() any {
	if o.Request == nil {
		return nil
	}
	return o.Request
}
