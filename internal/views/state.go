package views

import (
	"fmt"
	"net/url"
	"strconv"
)

// Phase is the state a page is rendered in. Loading happens inside the
// request, so a rendered page has either loaded its data or failed to.
type Phase int

const (
	PhaseLoaded Phase = iota
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// PhaseOf maps the result of loading a page's data to its phase.
func PhaseOf(err error) Phase {
	if err != nil {
		return PhaseFailed
	}
	return PhaseLoaded
}

type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalCreate
	ModalEdit
)

// Modal is the create/edit dialog state, independent of the load phase.
type Modal struct {
	Mode   ModalMode
	EditID uint
}

func (m Modal) Open() bool   { return m.Mode != ModalClosed }
func (m Modal) IsEdit() bool { return m.Mode == ModalEdit }

// ParseModal reads ?modal=create or ?modal=edit&id=N. Anything else is a
// closed modal.
func ParseModal(q url.Values) Modal {
	switch q.Get("modal") {
	case "create":
		return Modal{Mode: ModalCreate}
	case "edit":
		id, err := strconv.ParseUint(q.Get("id"), 10, 32)
		if err != nil || id == 0 {
			return Modal{}
		}
		return Modal{Mode: ModalEdit, EditID: uint(id)}
	default:
		return Modal{}
	}
}
