// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: caption.proto

package captionv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CaptionRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	PostId   string                 `protobuf:"bytes,1,opt,name=post_id,json=postId,proto3" json:"post_id,omitempty"`
	Platform string                 `protobuf:"bytes,2,opt,name=platform,proto3" json:"platform,omitempty"`
	MediaRef string                 `protobuf:"bytes,3,opt,name=media_ref,json=mediaRef,proto3" json:"media_ref,omitempty"`
	// The creator's own caption, used as grounding; may be empty.
	DraftCaption  string `protobuf:"bytes,4,opt,name=draft_caption,json=draftCaption,proto3" json:"draft_caption,omitempty"`
	Provider      string `protobuf:"bytes,5,opt,name=provider,proto3" json:"provider,omitempty"`
	Model         string `protobuf:"bytes,6,opt,name=model,proto3" json:"model,omitempty"`
	MaxTokens     int32  `protobuf:"varint,7,opt,name=max_tokens,json=maxTokens,proto3" json:"max_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CaptionRequest) Reset() {
	*x = CaptionRequest{}
	mi := &file_caption_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CaptionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CaptionRequest) ProtoMessage() {}

func (x *CaptionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_caption_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CaptionRequest.ProtoReflect.Descriptor instead.
func (*CaptionRequest) Descriptor() ([]byte, []int) {
	return file_caption_proto_rawDescGZIP(), []int{0}
}

func (x *CaptionRequest) GetPostId() string {
	if x != nil {
		return x.PostId
	}
	return ""
}

func (x *CaptionRequest) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

func (x *CaptionRequest) GetMediaRef() string {
	if x != nil {
		return x.MediaRef
	}
	return ""
}

func (x *CaptionRequest) GetDraftCaption() string {
	if x != nil {
		return x.DraftCaption
	}
	return ""
}

func (x *CaptionRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *CaptionRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *CaptionRequest) GetMaxTokens() int32 {
	if x != nil {
		return x.MaxTokens
	}
	return 0
}

type TokenUsage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InputTokens   int32                  `protobuf:"varint,1,opt,name=input_tokens,json=inputTokens,proto3" json:"input_tokens,omitempty"`
	OutputTokens  int32                  `protobuf:"varint,2,opt,name=output_tokens,json=outputTokens,proto3" json:"output_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TokenUsage) Reset() {
	*x = TokenUsage{}
	mi := &file_caption_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TokenUsage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TokenUsage) ProtoMessage() {}

func (x *TokenUsage) ProtoReflect() protoreflect.Message {
	mi := &file_caption_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TokenUsage.ProtoReflect.Descriptor instead.
func (*TokenUsage) Descriptor() ([]byte, []int) {
	return file_caption_proto_rawDescGZIP(), []int{1}
}

func (x *TokenUsage) GetInputTokens() int32 {
	if x != nil {
		return x.InputTokens
	}
	return 0
}

func (x *TokenUsage) GetOutputTokens() int32 {
	if x != nil {
		return x.OutputTokens
	}
	return 0
}

type CaptionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caption       string                 `protobuf:"bytes,1,opt,name=caption,proto3" json:"caption,omitempty"`
	Usage         *TokenUsage            `protobuf:"bytes,2,opt,name=usage,proto3" json:"usage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CaptionResponse) Reset() {
	*x = CaptionResponse{}
	mi := &file_caption_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CaptionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CaptionResponse) ProtoMessage() {}

func (x *CaptionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_caption_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CaptionResponse.ProtoReflect.Descriptor instead.
func (*CaptionResponse) Descriptor() ([]byte, []int) {
	return file_caption_proto_rawDescGZIP(), []int{2}
}

func (x *CaptionResponse) GetCaption() string {
	if x != nil {
		return x.Caption
	}
	return ""
}

func (x *CaptionResponse) GetUsage() *TokenUsage {
	if x != nil {
		return x.Usage
	}
	return nil
}

var File_caption_proto protoreflect.FileDescriptor

const file_caption_proto_rawDesc = "" +
	"\n" +
	"\rcaption.proto\x12\n" +
	"caption.v1\"\xd8\x01\n" +
	"\x0eCaptionRequest\x12\x17\n" +
	"\apost_id\x18\x01 \x01(\tR\x06postId\x12\x1a\n" +
	"\bplatform\x18\x02 \x01(\tR\bplatform\x12\x1b\n" +
	"\tmedia_ref\x18\x03 \x01(\tR\bmediaRef\x12#\n" +
	"\rdraft_caption\x18\x04 \x01(\tR\fdraftCaption\x12\x1a\n" +
	"\bprovider\x18\x05 \x01(\tR\bprovider\x12\x14\n" +
	"\x05model\x18\x06 \x01(\tR\x05model\x12\x1d\n" +
	"\n" +
	"max_tokens\x18\a \x01(\x05R\tmaxTokens\"T\n" +
	"\n" +
	"TokenUsage\x12!\n" +
	"\finput_tokens\x18\x01 \x01(\x05R\vinputTokens\x12#\n" +
	"\routput_tokens\x18\x02 \x01(\x05R\foutputTokens\"Y\n" +
	"\x0fCaptionResponse\x12\x18\n" +
	"\acaption\x18\x01 \x01(\tR\acaption\x12,\n" +
	"\x05usage\x18\x02 \x01(\v2\x16.caption.v1.TokenUsageR\x05usage2\\\n" +
	"\x0eCaptionService\x12J\n" +
	"\x0fGenerateCaption\x12\x1a.caption.v1.CaptionRequest\x1a\x1b.caption.v1.CaptionResponseB1Z/github.com/postflow-io/postflow/proto;captionv1b\x06proto3"

var (
	file_caption_proto_rawDescOnce sync.Once
	file_caption_proto_rawDescData []byte
)

func file_caption_proto_rawDescGZIP() []byte {
	file_caption_proto_rawDescOnce.Do(func() {
		file_caption_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_caption_proto_rawDesc), len(file_caption_proto_rawDesc)))
	})
	return file_caption_proto_rawDescData
}

var file_caption_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_caption_proto_goTypes = []any{
	(*CaptionRequest)(nil),  // 0: caption.v1.CaptionRequest
	(*TokenUsage)(nil),      // 1: caption.v1.TokenUsage
	(*CaptionResponse)(nil), // 2: caption.v1.CaptionResponse
}
var file_caption_proto_depIdxs = []int32{
	1, // 0: caption.v1.CaptionResponse.usage:type_name -> caption.v1.TokenUsage
	0, // 1: caption.v1.CaptionService.GenerateCaption:input_type -> caption.v1.CaptionRequest
	2, // 2: caption.v1.CaptionService.GenerateCaption:output_type -> caption.v1.CaptionResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_caption_proto_init() }
func file_caption_proto_init() {
	if File_caption_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_caption_proto_rawDesc), len(file_caption_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_caption_proto_goTypes,
		DependencyIndexes: file_caption_proto_depIdxs,
		MessageInfos:      file_caption_proto_msgTypes,
	}.Build()
	File_caption_proto = out.File
	file_caption_proto_goTypes = nil
	file_caption_proto_depIdxs = nil
}
