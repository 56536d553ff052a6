// Package propfind provides an embedded Go client for the propfind
// property catalog backed by Redis with the search module.
//
// The client wires the catalog and search pipeline directly over the
// database, without going through the HTTP API:
//
//	client, _ := propfind.New(ctx, propfind.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	created, _ := client.Listings().Create(ctx, &propfind.Listing{
//	    Title:  "Marina View Apartment",
//	    Status: "sale",
//	    Price:  900000,
//	})
//
//	page, _ := client.Search().
//	    Action("buy").
//	    Area("Marina").
//	    MinPrice(500000).
//	    SortBy("price-low").
//	    Page(1, 20).
//	    Do(ctx)
package propfind
