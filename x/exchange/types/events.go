package types

// Event types for the exchange module
const (
	EventTypeTransfer        = "transfer"
	EventTypeApproval        = "approval"
	EventTypeAddLiquidity    = "add_liquidity"
	EventTypeRemoveLiquidity = "remove_liquidity"
	EventTypeTokenPurchase   = "token_purchase"
	EventTypeEthPurchase     = "eth_purchase"

	AttributeKeyFrom        = "from"
	AttributeKeyTo          = "to"
	AttributeKeyOwner       = "owner"
	AttributeKeySpender     = "spender"
	AttributeKeyProvider    = "provider"
	AttributeKeyBuyer       = "buyer"
	AttributeKeyEthAmount   = "eth_amount"
	AttributeKeyTokenAmount = "token_amount"
	AttributeKeyShares      = "shares"
	AttributeKeyAmount      = "amount"
)
