package v1

import (
	"context"
	"fmt"

	"github.com/ahmedali8/near-bootcamp-project/internal/domain/accounts"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/friendships"
	"github.com/ahmedali8/near-bootcamp-project/internal/domain/messages"

	pb "github.com/ahmedali8/near-bootcamp-project/internal/api/grpc/v1/stub"

	"google.golang.org/grpc"
)

// ChatServer handles gRPC requests for accounts, friendships and messages
type ChatServer struct {
	pb.UnimplementedChatServiceServer
	accountService    accounts.AccountService
	friendshipService friendships.FriendshipService
	messagingService  messages.MessagingService
}

// NewChatServer creates a new instance of ChatServer.
func NewChatServer(
	accountService accounts.AccountService,
	friendshipService friendships.FriendshipService,
	messagingService messages.MessagingService,
) (*ChatServer, error) {
	return &ChatServer{
		accountService:    accountService,
		friendshipService: friendshipService,
		messagingService:  messagingService,
	}, nil
}

// RegisterAccount registers a chat account
func (s *ChatServer) RegisterAccount(ctx context.Context, req *pb.RegisterAccountRequest) (*pb.RegisterAccountResponse, error) {
	account, created, err := s.accountService.Register(ctx, req.AccountId)
	if err != nil {
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	return &pb.RegisterAccountResponse{
		Account: &pb.AccountMeta{
			AccountId:   account.ID,
			CreatedAtMs: account.DateTimeCreated.UnixMilli(),
		},
		Created: created,
	}, nil
}

// ListAccounts lists registered accounts newest-first with optional pagination
func (s *ChatServer) ListAccounts(ctx context.Context, req *pb.ListAccountsRequest) (*pb.ListAccountsResponse, error) {
	query := accounts.NewAccountQuery()
	if req.Limit > 0 {
		query.Limit = int(req.Limit)
	}
	if req.Offset > 0 {
		query.Offset = int(req.Offset)
	}

	accountList, err := s.accountService.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	response := &pb.ListAccountsResponse{}
	for _, account := range accountList {
		response.Accounts = append(response.Accounts, &pb.AccountMeta{
			AccountId:   account.ID,
			CreatedAtMs: account.DateTimeCreated.UnixMilli(),
		})
	}

	return response, nil
}

// CountAccounts returns the total number of registered accounts
func (s *ChatServer) CountAccounts(ctx context.Context, req *pb.CountAccountsRequest) (*pb.CountAccountsResponse, error) {
	count, err := s.accountService.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	return &pb.CountAccountsResponse{Count: count}, nil
}

// AddFriend records a mutual friendship between two registered accounts
func (s *ChatServer) AddFriend(ctx context.Context, req *pb.AddFriendRequest) (*pb.InfoResponse, error) {
	if err := s.friendshipService.AddFriend(ctx, req.AccountId, req.FriendId); err != nil {
		return nil, fmt.Errorf("failed to add friend: %w", err)
	}

	return &pb.InfoResponse{
		Message: fmt.Sprintf("%s and %s are now friends", req.AccountId, req.FriendId),
	}, nil
}

// SendMessage stores a chat message
func (s *ChatServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.MessageMeta, error) {
	message, err := s.messagingService.SendMessage(ctx, req.SenderId, req.ReceiverId, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return &pb.MessageMeta{
		Id:          message.ID,
		ChatId:      message.ChatID,
		Author:      message.Author,
		Content:     message.Content,
		CreatedAtMs: message.CreatedAtMs,
	}, nil
}

// GetChatId derives the chat id for an account pair
func (s *ChatServer) GetChatId(ctx context.Context, req *pb.GetChatIdRequest) (*pb.GetChatIdResponse, error) {
	if req.UserId == "" || req.ReceiverId == "" {
		return nil, fmt.Errorf("user_id and receiver_id are required")
	}

	return &pb.GetChatIdResponse{ChatId: messages.ChatID(req.UserId, req.ReceiverId)}, nil
}

// ListMessages lists the messages of a chat newest-first with optional pagination
func (s *ChatServer) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	query := messages.NewMessageQuery()
	if req.Limit > 0 {
		query.Limit = int(req.Limit)
	}
	if req.Offset > 0 {
		query.Offset = int(req.Offset)
	}

	messageList, err := s.messagingService.ListMessages(ctx, req.UserId, req.ReceiverId, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	response := &pb.ListMessagesResponse{}
	for _, message := range messageList {
		response.Messages = append(response.Messages, &pb.MessageMeta{
			Id:          message.ID,
			ChatId:      message.ChatID,
			Author:      message.Author,
			Content:     message.Content,
			CreatedAtMs: message.CreatedAtMs,
		})
	}

	return response, nil
}

// RegisterChatServer registers the ChatService gRPC service
func RegisterChatServer(server *grpc.Server, chatServer *ChatServer) {
	pb.RegisterChatServiceServer(server, chatServer)
}
