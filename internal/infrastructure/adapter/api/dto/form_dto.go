package dto

// TradeForm is the body of POST /buy and POST /sell
type TradeForm struct {
	Symbol string `form:"symbol" binding:"required,symbol"`
	Shares int64  `form:"num_shares" binding:"required,gt=0"`
}

// QuoteForm is the body of POST /quote
type QuoteForm struct {
	Symbol string `form:"symbol" binding:"required,symbol"`
}

// LoginForm is the body of POST /login
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// RegisterForm is the body of POST /register. Password confirmation is
// checked by the account service so a mismatch gets its own message.
type RegisterForm struct {
	Username     string `form:"username" binding:"required,max=64"`
	Password     string `form:"password" binding:"required"`
	Confirmation string `form:"confirmation" binding:"required"`
}
