package api

// Service accessors group Client methods by endpoint family. Each service
// embeds *Client so operation helpers share the same request path.

type PocketService struct{ *Client }

type TradeService struct{ *Client }

type UserInfoService struct{ *Client }

type UpdatesService struct{ *Client }

type AgentsService struct{ *Client }

type LinksService struct{ *Client }

func (c *Client) Pocket() PocketService {
	return PocketService{c}
}

func (c *Client) Trade() TradeService {
	return TradeService{c}
}

func (c *Client) UserInfo() UserInfoService {
	return UserInfoService{c}
}

func (c *Client) Updates() UpdatesService {
	return UpdatesService{c}
}

func (c *Client) Agents() AgentsService {
	return AgentsService{c}
}

func (c *Client) Links() LinksService {
	return LinksService{c}
}
