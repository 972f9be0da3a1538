package commands

import "github.com/udisondev/itemforge/internal/admin"

// Deps groups everything the commands need.
type Deps struct {
	Base    BaseTemplates
	Custom  CustomTemplates
	Creator ItemCreator
	Items   ItemGiver
	IDs     Allocator
	Curve   Curve
}

// RegisterAll registers all operator commands into the handler.
func RegisterAll(h *admin.Handler, d Deps) {
	// Inspection
	h.RegisterAdmin(NewPointCurve(d.Curve))
	h.RegisterAdmin(NewIDStats(d.IDs))
	h.RegisterAdmin(NewInfo(d.Base, d.Custom, d.IDs))

	// Generation and inventory
	h.RegisterAdmin(NewGenItem(d.Base, d.Creator))
	h.RegisterAdmin(NewGiveItem(d.Base, d.Custom, d.Items, d.IDs))
	h.RegisterAdmin(NewDeleteTemplate(d.Custom, d.Creator, d.IDs))
}
