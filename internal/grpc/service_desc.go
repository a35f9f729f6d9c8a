package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified name of the node service.
const ServiceName = "shieldd.v1.Node"

// NodeServer is the server API of the node service.
type NodeServer interface {
	Submit(context.Context, *SubmitRequest) (*SubmitResponse, error)
	GetPool(context.Context, *GetPoolRequest) (*PoolResponse, error)
	GetPlatformConfig(context.Context, *GetPlatformConfigRequest) (*PlatformConfigResponse, error)
	GetReferrer(context.Context, *GetReferrerRequest) (*ReferrerResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*BalanceResponse, error)
	GetAccount(context.Context, *GetAccountRequest) (*AccountResponse, error)
	QuoteSwap(context.Context, *QuoteSwapRequest) (*QuoteSwapResponse, error)
	Fund(context.Context, *FundRequest) (*FundResponse, error)
	ListJournal(context.Context, *ListJournalRequest) (*ListJournalResponse, error)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// unary adapts a typed NodeServer method to a grpc.MethodDesc.
func unary[Req, Resp any](name string, call func(NodeServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(NodeServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(NodeServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// NodeServiceDesc describes the node service for grpc.Server.RegisterService.
var NodeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NodeServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Submit", NodeServer.Submit),
		unary("GetPool", NodeServer.GetPool),
		unary("GetPlatformConfig", NodeServer.GetPlatformConfig),
		unary("GetReferrer", NodeServer.GetReferrer),
		unary("GetBalance", NodeServer.GetBalance),
		unary("GetAccount", NodeServer.GetAccount),
		unary("QuoteSwap", NodeServer.QuoteSwap),
		unary("Fund", NodeServer.Fund),
		unary("ListJournal", NodeServer.ListJournal),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shieldd/v1/node",
}
