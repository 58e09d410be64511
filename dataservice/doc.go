// Package dataservice provides the HTTP client for the backing data service.
// Request handlers consume it exclusively through the From/RPC/Auth query
// contract; the client itself is constructed lazily by the request context,
// once per request, from either the caller's credentials or the elevated
// service credential.
//
// # Usage
//
//	svc, err := ctx.Service()
//	if err != nil {
//		return nil, err
//	}
//
//	var todos []Todo
//	err = svc.From("todos").Select("*").Eq("owner", userID).Execute(ctx, &todos)
//
// Row-set endpoints always return JSON arrays; Single extracts the first row
// and fails with ErrNoRows when the set is empty:
//
//	var todo Todo
//	err = svc.From("todos").Select("*").Eq("id", id).Single().Execute(ctx, &todo)
package dataservice
