package models

// StatusPresentation is the badge rendered next to a status value in both
// the admin and the public site. Labels carry the Ar/En pair like every
// other user-facing text field.
type StatusPresentation struct {
	ColorClasses string `json:"color_classes"`
	LabelEn      string `json:"label_en"`
	LabelAr      string `json:"label_ar"`
}

// PresentationFor maps a publication status to its badge. The function is
// total: unrecognized input falls back to a gray "Unknown" badge.
func PresentationFor(status Status) StatusPresentation {
	switch status {
	case StatusDraft:
		return StatusPresentation{ColorClasses: "bg-gray-100 text-gray-800", LabelEn: "Draft", LabelAr: "مسودة"}
	case StatusReview:
		return StatusPresentation{ColorClasses: "bg-yellow-100 text-yellow-800", LabelEn: "In Review", LabelAr: "قيد المراجعة"}
	case StatusPublished:
		return StatusPresentation{ColorClasses: "bg-green-100 text-green-800", LabelEn: "Published", LabelAr: "منشور"}
	case StatusArchived:
		return StatusPresentation{ColorClasses: "bg-slate-200 text-slate-700", LabelEn: "Archived", LabelAr: "مؤرشف"}
	default:
		return StatusPresentation{ColorClasses: "bg-gray-100 text-gray-500", LabelEn: "Unknown", LabelAr: "غير معروف"}
	}
}

// EventPresentationFor maps the event-only status dimension to its badge,
// with the same gray fallback.
func EventPresentationFor(status EventStatus) StatusPresentation {
	switch status {
	case EventUpcoming:
		return StatusPresentation{ColorClasses: "bg-blue-100 text-blue-800", LabelEn: "Upcoming", LabelAr: "قادم"}
	case EventOngoing:
		return StatusPresentation{ColorClasses: "bg-green-100 text-green-800", LabelEn: "Ongoing", LabelAr: "جاري"}
	case EventPast:
		return StatusPresentation{ColorClasses: "bg-gray-100 text-gray-800", LabelEn: "Past", LabelAr: "منتهي"}
	case EventCancelled:
		return StatusPresentation{ColorClasses: "bg-red-100 text-red-800", LabelEn: "Cancelled", LabelAr: "ملغي"}
	default:
		return StatusPresentation{ColorClasses: "bg-gray-100 text-gray-500", LabelEn: "Unknown", LabelAr: "غير معروف"}
	}
}
