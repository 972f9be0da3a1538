package constants

// Item template entry ranges.
//
// Base templates (item_template) live below ItemCreationIDStart.
// Generated templates (custom_item_template) are allocated from ItemCreationIDStart up.
const (
	// ItemCreationIDStart is the first entry handed out to generated templates.
	ItemCreationIDStart int32 = 100000

	// ItemEntryMax is the highest entry representable by the template table.
	ItemEntryMax int32 = 0x7FFFFFFF
)

// IsCustomEntry returns true if entry is in the generated template range
// starting at start (pass ItemCreationIDStart unless configured otherwise).
func IsCustomEntry(entry, start int32) bool {
	return entry >= start
}

// IsBaseEntry returns true if entry is a valid base template entry.
func IsBaseEntry(entry, start int32) bool {
	return entry > 0 && entry < start
}

// Login announcement sent by the loot hook.
const LoginAnnouncement = "This server runs the random item enchantments module."
