package apperrors

// 错误码
const (
	CodeUnknown    = 1000
	CodeInvalidMsg = 1001

	CodeRoomNotFound = 2001
	CodeRoomFull     = 2002
	CodeNotInRoom    = 2003
	CodeGameStarted  = 2004

	CodeGameNotStart   = 3001
	CodeNotYourTurn    = 3002
	CodeInvalidCards   = 3003
	CodeCannotBeat     = 3004
	CodeCardsNotInHand = 3005
	CodeMustAnswerDraw = 3006
	CodeClaimNotOpen   = 3007
	CodeClaimPending   = 3008
	CodeUnoNotAllowed  = 3009
	CodeNotEnoughSeats = 3010
)

// GameError 引擎和房间共用的错误，携带机器可读错误码
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// New 创建一个 GameError
func New(code int, message string) *GameError {
	return &GameError{Code: code, Message: message}
}

// 动作被拒绝时使用的预定义错误，拒绝不产生任何状态变化
var (
	ErrRoomNotFound   = New(CodeRoomNotFound, "房间不存在")
	ErrRoomFull       = New(CodeRoomFull, "房间已满")
	ErrNotInRoom      = New(CodeNotInRoom, "您不在房间中")
	ErrGameStarted    = New(CodeGameStarted, "游戏已开始")
	ErrGameNotStart   = New(CodeGameNotStart, "游戏尚未开始")
	ErrNotYourTurn    = New(CodeNotYourTurn, "还没轮到您")
	ErrInvalidCards   = New(CodeInvalidCards, "无法识别的牌型")
	ErrCannotBeat     = New(CodeCannotBeat, "您的牌压不过上家")
	ErrCardsNotInHand = New(CodeCardsNotInHand, "出的牌不在手中")
	ErrMustAnswerDraw = New(CodeMustAnswerDraw, "必须回应罚牌或接受罚牌")
	ErrClaimNotOpen   = New(CodeClaimNotOpen, "当前没有属于您的吃碰杠窗口")
	ErrClaimPending   = New(CodeClaimPending, "正在等待其他玩家吃碰杠")
	ErrUnoNotAllowed  = New(CodeUnoNotAllowed, "只剩一张牌时才能报牌")
	ErrNotEnoughSeats = New(CodeNotEnoughSeats, "至少需要两名玩家")
)
