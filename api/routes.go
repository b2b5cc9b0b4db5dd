package api

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// API version 1
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/params", s.handleGetParams)
		v1.GET("/pool", s.handleGetPool)
		v1.GET("/prices/:kind", s.handleGetPrice)

		shares := v1.Group("/shares")
		{
			shares.GET("", s.handleGetShareHolders)
			shares.GET("/:address", s.handleGetShares)
			shares.GET("/:address/allowance/:spender", s.handleGetShareAllowance)
		}

		v1.GET("/balances/:address", s.handleGetBalances)
	}
}
