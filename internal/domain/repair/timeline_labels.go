package repair

import (
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/timeline"
)

type statusTimelineInfo struct {
	title         string
	titleSq       string
	description   string
	descriptionSq string
	icon          string
}

var repairTimelineLabels = map[Status]statusTimelineInfo{
	StatusPending: {
		title:         "Repair Request Created",
		titleSq:       "Kërkesa për riparim u krijua",
		description:   "Your repair request has been received and will be reviewed shortly.",
		descriptionSq: "Kërkesa juaj për riparim është pranuar dhe do të shqyrtohet së shpejti.",
		icon:          "clipboard",
	},
	StatusReceived: {
		title:         "Device Received",
		titleSq:       "Pajisja u pranua",
		description:   "Your device has arrived at our workshop.",
		descriptionSq: "Pajisja juaj ka mbërritur në punishten tonë.",
		icon:          "inbox",
	},
	StatusDiagnosing: {
		title:         "Diagnosing",
		titleSq:       "Në diagnostikim",
		description:   "Our technicians are diagnosing the issue.",
		descriptionSq: "Teknikët tanë po diagnostikojnë problemin.",
		icon:          "search",
	},
	StatusInProgress: {
		title:         "Repair In Progress",
		titleSq:       "Riparimi në proces",
		description:   "Your device is being repaired.",
		descriptionSq: "Pajisja juaj po riparohet.",
		icon:          "wrench",
	},
	StatusCompleted: {
		title:         "Repair Completed",
		titleSq:       "Riparimi përfundoi",
		description:   "The repair has been completed and tested.",
		descriptionSq: "Riparimi ka përfunduar dhe është testuar.",
		icon:          "check-circle",
	},
	StatusReadyForPickup: {
		title:         "Ready for Pickup",
		titleSq:       "Gati për tërheqje",
		description:   "Your device is ready to be picked up or shipped back.",
		descriptionSq: "Pajisja juaj është gati për t'u tërhequr ose për t'u dërguar.",
		icon:          "package",
	},
	StatusCancelled: {
		title:         "Repair Cancelled",
		titleSq:       "Riparimi u anulua",
		description:   "Your repair request has been cancelled.",
		descriptionSq: "Kërkesa juaj për riparim është anuluar.",
		icon:          "x-circle",
	},
}

// TimelineEntryFor builds the timeline entry recorded when the repair reaches
// the given status.
func TimelineEntryFor(r *Repair, status Status) (*timeline.Entry, error) {
	info, ok := repairTimelineLabels[status]
	if !ok {
		return nil, shared.NewDomainError("INVALID_STATUS", "No timeline labels for status "+status.String())
	}
	return timeline.NewEntry(
		timeline.OwnerRepair,
		r.ID,
		info.title,
		info.titleSq,
		info.description,
		info.descriptionSq,
		status.String(),
		info.icon,
	)
}

// EasyMailInTimelineEntry builds the extra entry recorded for mail-in repairs
// announcing the shipping box dispatch.
func EasyMailInTimelineEntry(r *Repair) (*timeline.Entry, error) {
	return timeline.NewEntry(
		timeline.OwnerRepair,
		r.ID,
		"EasyMail-In Shipping",
		"Dërgesa EasyMail-In",
		"A shipping box is on its way to you. Pack your device and send it back free of charge.",
		"Një kuti transporti është nisur drejt jush. Paketoni pajisjen dhe na e dërgoni pa pagesë.",
		StatusPending.String(),
		"mail",
	)
}
