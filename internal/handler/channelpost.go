package handler

import (
	"fmt"
	"sync"
	"time"

	"vidgate/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// pendingPost is a source-channel post waiting for its pair.
type pendingPost struct {
	kind      string // "video" or "photo"
	fileID    string
	messageID int
	caption   string
	createdAt time.Time
}

// mediaGroup accumulates a photo+video pair posted as an album.
type mediaGroup struct {
	photoID        string
	videoFileID    string
	videoMessageID int
	caption        string
	createdAt      time.Time
}

type pairingState struct {
	mu      sync.Mutex
	groups  map[string]*mediaGroup
	pending map[int]*pendingPost // keyed by source message id
}

func newPairingState() pairingState {
	return pairingState{
		groups:  make(map[string]*mediaGroup),
		pending: make(map[int]*pendingPost),
	}
}

// handleChannelPost watches the source channel and pairs videos with their
// thumbnail photos, either via a media group or via a reply to an earlier
// unpaired post. A completed pair is cataloged and announced in the target
// channels.
func (h *Handler) handleChannelPost(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Chat == nil {
		return nil
	}
	if h.sourceChanID == 0 || msg.Chat.ID != h.sourceChanID {
		return nil
	}

	if msg.AlbumID != "" {
		return h.handleMediaGroup(msg)
	}
	if msg.ReplyTo != nil {
		return h.handleReplyPairing(msg)
	}

	// Single post: hold it until a reply completes the pair
	post := pendingFromMessage(msg)
	if post == nil {
		return nil
	}
	h.pairing.mu.Lock()
	h.pairing.pending[msg.ID] = post
	h.pairing.mu.Unlock()

	h.logger.Info("Source post stored, waiting for pair",
		zap.Int("message_id", msg.ID),
		zap.String("kind", post.kind),
	)
	return nil
}

func pendingFromMessage(msg *tele.Message) *pendingPost {
	switch {
	case msg.Video != nil:
		return &pendingPost{
			kind:      "video",
			fileID:    msg.Video.FileID,
			messageID: msg.ID,
			caption:   msg.Caption,
			createdAt: time.Now(),
		}
	case msg.Photo != nil:
		return &pendingPost{
			kind:      "photo",
			fileID:    msg.Photo.FileID,
			messageID: msg.ID,
			caption:   msg.Caption,
			createdAt: time.Now(),
		}
	}
	return nil
}

// handleMediaGroup collects album parts; the pair is published once both
// the photo and the video arrived.
func (h *Handler) handleMediaGroup(msg *tele.Message) error {
	h.pairing.mu.Lock()
	group, exists := h.pairing.groups[msg.AlbumID]
	if !exists {
		group = &mediaGroup{createdAt: time.Now()}
		h.pairing.groups[msg.AlbumID] = group
	}

	if msg.Photo != nil {
		group.photoID = msg.Photo.FileID
	}
	if msg.Video != nil {
		group.videoFileID = msg.Video.FileID
		group.videoMessageID = msg.ID
	}
	if msg.Caption != "" {
		group.caption = msg.Caption
	}

	complete := group.photoID != "" && group.videoFileID != ""
	if complete {
		delete(h.pairing.groups, msg.AlbumID)
	}
	h.pairing.mu.Unlock()

	if !complete {
		return nil
	}

	h.logger.Info("Media group complete",
		zap.String("album_id", msg.AlbumID),
		zap.Int("video_message_id", group.videoMessageID),
	)
	return h.publishVideo(msg.Chat.ID, group.videoMessageID, group.caption, group.photoID)
}

// handleReplyPairing completes a pair when a photo replies to a video, a
// video replies to a photo, or a video replies to another video.
func (h *Handler) handleReplyPairing(msg *tele.Message) error {
	replied := msg.ReplyTo

	// The replied-to message may be one we held earlier
	h.pairing.mu.Lock()
	held := h.pairing.pending[replied.ID]
	h.pairing.mu.Unlock()

	pair := resolveReplyPair(msg, replied, held)
	if pair == nil {
		return nil
	}

	h.pairing.mu.Lock()
	delete(h.pairing.pending, replied.ID)
	h.pairing.mu.Unlock()

	return h.publishVideo(msg.Chat.ID, pair.contentMessageID, pair.caption, pair.thumbnailID)
}

// resolvedPair is a completed pair ready to be cataloged.
type resolvedPair struct {
	contentMessageID int
	thumbnailID      string
	caption          string
}

// resolveReplyPair works out the content video, thumbnail and caption for a
// reply. held is the stored post for the replied-to message, if any. The
// reply's own caption wins over the replied-to side's. Returns nil when the
// reply does not complete a pair.
func resolveReplyPair(msg, replied *tele.Message, held *pendingPost) *resolvedPair {
	switch {
	case msg.Video != nil:
		switch {
		case replied.Photo != nil:
			return &resolvedPair{
				contentMessageID: msg.ID,
				thumbnailID:      replied.Photo.FileID,
				caption:          firstNonEmpty(msg.Caption, replied.Caption),
			}
		case replied.Video != nil:
			// The later video supplies the card image, the earlier
			// one is the content
			if msg.Video.Thumbnail == nil {
				return nil
			}
			return &resolvedPair{
				contentMessageID: replied.ID,
				thumbnailID:      msg.Video.Thumbnail.FileID,
				caption:          firstNonEmpty(msg.Caption, replied.Caption),
			}
		case held != nil && held.kind == "photo":
			return &resolvedPair{
				contentMessageID: msg.ID,
				thumbnailID:      held.fileID,
				caption:          firstNonEmpty(msg.Caption, held.caption),
			}
		case held != nil && held.kind == "video":
			if msg.Video.Thumbnail == nil {
				return nil
			}
			return &resolvedPair{
				contentMessageID: held.messageID,
				thumbnailID:      msg.Video.Thumbnail.FileID,
				caption:          firstNonEmpty(msg.Caption, held.caption),
			}
		}
	case msg.Photo != nil:
		switch {
		case replied.Video != nil:
			return &resolvedPair{
				contentMessageID: replied.ID,
				thumbnailID:      msg.Photo.FileID,
				caption:          firstNonEmpty(msg.Caption, replied.Caption),
			}
		case held != nil && held.kind == "video":
			return &resolvedPair{
				contentMessageID: held.messageID,
				thumbnailID:      msg.Photo.FileID,
				caption:          firstNonEmpty(msg.Caption, held.caption),
			}
		}
	}
	return nil
}

// publishVideo catalogs the pair and announces it in every target channel
func (h *Handler) publishVideo(sourceChannel int64, messageID int, caption, thumbnailID string) error {
	title := service.SanitizeTitle(caption)

	videoID, err := h.videos.SaveVideo(sourceChannel, messageID, title, thumbnailID)
	if err != nil {
		h.logger.Error("Failed to save video", zap.Error(err))
		return nil
	}

	deepLink := fmt.Sprintf("https://t.me/%s?start=%s", h.bot.Me.Username, videoID)
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.URL("📥 Get Video", deepLink)))

	photo := &tele.Photo{
		File:    tele.File{FileID: thumbnailID},
		Caption: fmt.Sprintf(h.messages.Post, title),
	}

	for _, target := range h.targetChans {
		if _, err := h.bot.Send(tele.ChatID(target), photo, markup); err != nil {
			h.logger.Error("Failed to post to target channel",
				zap.Int64("channel_id", target),
				zap.String("video_id", videoID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// SweepPairing drops unpaired posts and incomplete albums older than
// maxAge, returning how many entries were removed.
func (h *Handler) SweepPairing(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	h.pairing.mu.Lock()
	defer h.pairing.mu.Unlock()

	removed := 0
	for id, post := range h.pairing.pending {
		if post.createdAt.Before(cutoff) {
			delete(h.pairing.pending, id)
			removed++
		}
	}
	for id, group := range h.pairing.groups {
		if group.createdAt.Before(cutoff) {
			delete(h.pairing.groups, id)
			removed++
		}
	}
	return removed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
