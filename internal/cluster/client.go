package cluster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/rl1809/warehouse-cluster/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-cluster/internal/core/domain"
)

const updateQuantityKey = "update-quantity"

const defaultTimeout = 5 * time.Second

// Dialer opens a stub for one endpoint and returns it together with the
// function releasing its connection. Tests substitute in-process stubs
// through this hook.
type Dialer func(endpoint string) (pb.InventoryServiceClient, func() error, error)

type Option func(*Client)

// WithTimeout sets the per-call deadline applied to every remote call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithDialer replaces the default gRPC dialer.
func WithDialer(dial Dialer) Option {
	return func(c *Client) { c.dial = dial }
}

// Client is the cluster façade: it routes each operation to the node
// owning the SKU and speaks that node's gRPC interface.
type Client struct {
	router  *Router
	dial    Dialer
	timeout time.Duration

	stubs   []pb.InventoryServiceClient
	closers []func() error

	closeOnce sync.Once
	closeErr  error
}

func New(endpoints []string, opts ...Option) (*Client, error) {
	router, err := NewRouter(endpoints)
	if err != nil {
		return nil, err
	}

	c := &Client{
		router:  router,
		dial:    grpcDial,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, endpoint := range router.Endpoints() {
		stub, closer, err := c.dial(endpoint)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("dial %s: %w", endpoint, err)
		}
		c.stubs = append(c.stubs, stub)
		c.closers = append(c.closers, closer)
	}
	return c, nil
}

func grpcDial(endpoint string) (pb.InventoryServiceClient, func() error, error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return pb.NewInventoryServiceClient(conn), conn.Close, nil
}

// AddItem creates the item on the node owning its SKU.
func (c *Client) AddItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.stubFor(item.SKU).AddItem(ctx, &pb.AddItemRequest{
		Item: &pb.Item{
			Sku:         item.SKU,
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
		},
	})
	if err != nil {
		return domain.Item{}, err
	}
	return itemFromProto(resp.GetItem()), nil
}

// UpdateField selects which item fields an UpdateItem call overwrites.
type UpdateField func(*domain.ItemPatch)

func WithName(name string) UpdateField {
	return func(p *domain.ItemPatch) { p.Name = &name }
}

func WithDescription(description string) UpdateField {
	return func(p *domain.ItemPatch) { p.Description = &description }
}

func WithQuantity(quantity int64) UpdateField {
	return func(p *domain.ItemPatch) { p.Quantity = &quantity }
}

// UpdateItem reads the current item, fills the fields the caller did not
// supply from it, and writes the merged result back with the forcing
// metadata attached. The read and the write are two separate calls: a
// concurrent mutation between them is lost. That race is a property of
// the protocol, not something this client papers over.
func (c *Client) UpdateItem(ctx context.Context, sku string, fields ...UpdateField) (domain.Item, error) {
	var patch domain.ItemPatch
	for _, f := range fields {
		f(&patch)
	}

	current, err := c.QueryItem(ctx, sku)
	if err != nil {
		return domain.Item{}, err
	}

	name, description, quantity := current.Name, current.Description, current.Quantity
	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.Description != nil {
		description = *patch.Description
	}
	if patch.Quantity != nil {
		quantity = *patch.Quantity
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()
	callCtx = metadata.AppendToOutgoingContext(callCtx, updateQuantityKey, "true")

	resp, err := c.stubFor(sku).UpdateItem(callCtx, &pb.UpdateItemRequest{
		Sku:         sku,
		Name:        name,
		Description: description,
		Quantity:    quantity,
	})
	if err != nil {
		return domain.Item{}, err
	}
	return itemFromProto(resp.GetItem()), nil
}

// TakeItem decrements the item's quantity by amount on the owning node.
func (c *Client) TakeItem(ctx context.Context, sku string, amount int64) (domain.Item, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.stubFor(sku).TakeItem(ctx, &pb.TakeItemRequest{Sku: sku, Amount: amount})
	if err != nil {
		return domain.Item{}, err
	}
	return itemFromProto(resp.GetItem()), nil
}

// QueryItem reads the item from the owning node.
func (c *Client) QueryItem(ctx context.Context, sku string) (domain.Item, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.stubFor(sku).QueryItem(ctx, &pb.QueryItemRequest{Sku: sku})
	if err != nil {
		return domain.Item{}, err
	}
	return itemFromProto(resp.GetItem()), nil
}

// EndpointFor reports which endpoint owns sku.
func (c *Client) EndpointFor(sku string) string {
	return c.router.EndpointFor(sku)
}

// Endpoints returns the configured endpoint list in order.
func (c *Client) Endpoints() []string {
	return c.router.Endpoints()
}

// Close releases every node connection. Calling it again is a no-op.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		var errs []error
		for _, closer := range c.closers {
			if err := closer(); err != nil {
				errs = append(errs, err)
			}
		}
		c.closeErr = errors.Join(errs...)
	})
	return c.closeErr
}

func (c *Client) stubFor(sku string) pb.InventoryServiceClient {
	return c.stubs[c.router.NodeIndex(sku)]
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

func itemFromProto(item *pb.Item) domain.Item {
	return domain.Item{
		SKU:         item.GetSku(),
		Name:        item.GetName(),
		Description: item.GetDescription(),
		Quantity:    item.GetQuantity(),
	}
}
