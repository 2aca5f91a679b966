package discord

// Friendly message constants for Discord responses
const (
	// Wallet
	MsgInsufficientFunds = "⚠️ **Not Enough Coins!**\nYou can't afford that right now."

	// Ventures
	MsgVentureNotFound = "🏚️ **Venture Not Found**\nYou don't own that one. Check your portfolio."
	MsgUnknownType     = "❓ **Unknown Venture**\nThat's not in the catalog. Maybe check the spelling?"
	MsgAlreadyOwned    = "🏢 **Already Owned**\nYou already run one of those."
	MsgIncidentActive  = "🚨 **Incident In Progress**\nRepair the venture before doing that."
	MsgNoIncident      = "🔧 **Nothing to Repair**\nThat venture is running just fine."

	// User
	MsgUserNotFound = "👤 **User Not Found**\nHave they registered yet?"

	// Cooldowns
	MsgCooldownActive = "⏳ **Whoa there!**\nYou collected recently. Give it a little time."

	MsgGenericError = "❌ Something went wrong."
)
