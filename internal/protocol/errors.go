package protocol

import "github.com/feiyu233/uno-fusion/internal/apperrors"

// ErrorMessages 错误码对应的消息，与 apperrors 共用一套错误码
var ErrorMessages = map[int]string{
	apperrors.CodeUnknown:        "未知错误",
	apperrors.CodeInvalidMsg:     "无效的消息格式",
	apperrors.CodeRoomNotFound:   "房间不存在",
	apperrors.CodeRoomFull:       "房间已满",
	apperrors.CodeNotInRoom:      "您不在房间中",
	apperrors.CodeGameStarted:    "游戏已开始",
	apperrors.CodeGameNotStart:   "游戏尚未开始",
	apperrors.CodeNotYourTurn:    "还没轮到您",
	apperrors.CodeInvalidCards:   "无法识别的牌型",
	apperrors.CodeCannotBeat:     "您的牌压不过上家",
	apperrors.CodeCardsNotInHand: "出的牌不在手中",
	apperrors.CodeMustAnswerDraw: "必须回应罚牌或接受罚牌",
	apperrors.CodeClaimNotOpen:   "当前没有属于您的吃碰杠窗口",
	apperrors.CodeClaimPending:   "正在等待其他玩家吃碰杠",
	apperrors.CodeUnoNotAllowed:  "只剩一张牌时才能报牌",
	apperrors.CodeNotEnoughSeats: "至少需要两名玩家",
}
