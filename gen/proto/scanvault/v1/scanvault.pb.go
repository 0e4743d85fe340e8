// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: scanvault/v1/scanvault.proto

package scanvaultv1

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

type Group struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CustomerId    string                 `protobuf:"bytes,2,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,3,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	DocumentCount int32                  `protobuf:"varint,4,opt,name=document_count,json=documentCount,proto3" json:"document_count,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Group) Reset() {
	*x = Group{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Group) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Group) ProtoMessage() {}

func (x *Group) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Group.ProtoReflect.Descriptor instead.
func (*Group) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{0}
}

func (x *Group) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Group) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *Group) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Group) GetDocumentCount() int32 {
	if x != nil {
		return x.DocumentCount
	}
	return 0
}

func (x *Group) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Group) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	GroupId       string                 `protobuf:"bytes,2,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	ImageRef      string                 `protobuf:"bytes,3,opt,name=image_ref,json=imageRef,proto3" json:"image_ref,omitempty"`
	AssetId       string                 `protobuf:"bytes,4,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	Type          string                 `protobuf:"bytes,5,opt,name=type,proto3" json:"type,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{1}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *Document) GetImageRef() string {
	if x != nil {
		return x.ImageRef
	}
	return ""
}

func (x *Document) GetAssetId() string {
	if x != nil {
		return x.AssetId
	}
	return ""
}

func (x *Document) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetGroupRequest) Reset() {
	*x = GetGroupRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetGroupRequest) ProtoMessage() {}

func (x *GetGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetGroupRequest.ProtoReflect.Descriptor instead.
func (*GetGroupRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{2}
}

func (x *GetGroupRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Group         *Group                 `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetGroupResponse) Reset() {
	*x = GetGroupResponse{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetGroupResponse) ProtoMessage() {}

func (x *GetGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetGroupResponse.ProtoReflect.Descriptor instead.
func (*GetGroupResponse) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{3}
}

func (x *GetGroupResponse) GetGroup() *Group {
	if x != nil {
		return x.Group
	}
	return nil
}

type ListGroupsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Optional owner filter.
	OwnerId       string `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGroupsRequest) Reset() {
	*x = ListGroupsRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGroupsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGroupsRequest) ProtoMessage() {}

func (x *ListGroupsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGroupsRequest.ProtoReflect.Descriptor instead.
func (*ListGroupsRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{4}
}

func (x *ListGroupsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ListGroupsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Groups        []*Group               `protobuf:"bytes,1,rep,name=groups,proto3" json:"groups,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGroupsResponse) Reset() {
	*x = ListGroupsResponse{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGroupsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGroupsResponse) ProtoMessage() {}

func (x *ListGroupsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGroupsResponse.ProtoReflect.Descriptor instead.
func (*ListGroupsResponse) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{5}
}

func (x *ListGroupsResponse) GetGroups() []*Group {
	if x != nil {
		return x.Groups
	}
	return nil
}

type SearchGroupsRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	CustomerIdPrefix string                 `protobuf:"bytes,1,opt,name=customer_id_prefix,json=customerIdPrefix,proto3" json:"customer_id_prefix,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *SearchGroupsRequest) Reset() {
	*x = SearchGroupsRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchGroupsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchGroupsRequest) ProtoMessage() {}

func (x *SearchGroupsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchGroupsRequest.ProtoReflect.Descriptor instead.
func (*SearchGroupsRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{6}
}

func (x *SearchGroupsRequest) GetCustomerIdPrefix() string {
	if x != nil {
		return x.CustomerIdPrefix
	}
	return ""
}

type SearchGroupsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Groups        []*Group               `protobuf:"bytes,1,rep,name=groups,proto3" json:"groups,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchGroupsResponse) Reset() {
	*x = SearchGroupsResponse{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchGroupsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchGroupsResponse) ProtoMessage() {}

func (x *SearchGroupsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchGroupsResponse.ProtoReflect.Descriptor instead.
func (*SearchGroupsResponse) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{7}
}

func (x *SearchGroupsResponse) GetGroups() []*Group {
	if x != nil {
		return x.Groups
	}
	return nil
}

type SaveGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	CustomerId    string                 `protobuf:"bytes,3,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveGroupRequest) Reset() {
	*x = SaveGroupRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveGroupRequest) ProtoMessage() {}

func (x *SaveGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveGroupRequest.ProtoReflect.Descriptor instead.
func (*SaveGroupRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{8}
}

func (x *SaveGroupRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SaveGroupRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *SaveGroupRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

type SaveGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Group         *Group                 `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveGroupResponse) Reset() {
	*x = SaveGroupResponse{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveGroupResponse) ProtoMessage() {}

func (x *SaveGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveGroupResponse.ProtoReflect.Descriptor instead.
func (*SaveGroupResponse) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{9}
}

func (x *SaveGroupResponse) GetGroup() *Group {
	if x != nil {
		return x.Group
	}
	return nil
}

type DeleteGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteGroupRequest) Reset() {
	*x = DeleteGroupRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteGroupRequest) ProtoMessage() {}

func (x *DeleteGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteGroupRequest.ProtoReflect.Descriptor instead.
func (*DeleteGroupRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteGroupRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteGroupResponse) Reset() {
	*x = DeleteGroupResponse{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteGroupResponse) ProtoMessage() {}

func (x *DeleteGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteGroupResponse.ProtoReflect.Descriptor instead.
func (*DeleteGroupResponse) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{11}
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{12}
}

func (x *ListDocumentsRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{13}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{14}
}

func (x *DeleteDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{15}
}

type RunSyncRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunSyncRequest) Reset() {
	*x = RunSyncRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunSyncRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunSyncRequest) ProtoMessage() {}

func (x *RunSyncRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunSyncRequest.ProtoReflect.Descriptor instead.
func (*RunSyncRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{16}
}

type SyncProgress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	CustomerId    string                 `protobuf:"bytes,2,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Done          int32                  `protobuf:"varint,3,opt,name=done,proto3" json:"done,omitempty"`
	Total         int32                  `protobuf:"varint,4,opt,name=total,proto3" json:"total,omitempty"`
	Bundles       int32                  `protobuf:"varint,5,opt,name=bundles,proto3" json:"bundles,omitempty"`
	Error         string                 `protobuf:"bytes,6,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncProgress) Reset() {
	*x = SyncProgress{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncProgress) ProtoMessage() {}

func (x *SyncProgress) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncProgress.ProtoReflect.Descriptor instead.
func (*SyncProgress) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{17}
}

func (x *SyncProgress) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *SyncProgress) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *SyncProgress) GetDone() int32 {
	if x != nil {
		return x.Done
	}
	return 0
}

func (x *SyncProgress) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *SyncProgress) GetBundles() int32 {
	if x != nil {
		return x.Bundles
	}
	return 0
}

func (x *SyncProgress) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DisplayName   string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{18}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *User) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserRequest) Reset() {
	*x = GetUserRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserRequest) ProtoMessage() {}

func (x *GetUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserRequest.ProtoReflect.Descriptor instead.
func (*GetUserRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{19}
}

func (x *GetUserRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserResponse) Reset() {
	*x = GetUserResponse{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserResponse) ProtoMessage() {}

func (x *GetUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserResponse.ProtoReflect.Descriptor instead.
func (*GetUserResponse) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{20}
}

func (x *GetUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

// SaveUser upserts an account. Groups reference an owner row, so a
// client must save its user before its first SaveGroup.
type SaveUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DisplayName   string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveUserRequest) Reset() {
	*x = SaveUserRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveUserRequest) ProtoMessage() {}

func (x *SaveUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveUserRequest.ProtoReflect.Descriptor instead.
func (*SaveUserRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{21}
}

func (x *SaveUserRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SaveUserRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *SaveUserRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type SaveUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveUserResponse) Reset() {
	*x = SaveUserResponse{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveUserResponse) ProtoMessage() {}

func (x *SaveUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveUserResponse.ProtoReflect.Descriptor instead.
func (*SaveUserResponse) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{22}
}

func (x *SaveUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type DeleteUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteUserRequest) Reset() {
	*x = DeleteUserRequest{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteUserRequest) ProtoMessage() {}

func (x *DeleteUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteUserRequest.ProtoReflect.Descriptor instead.
func (*DeleteUserRequest) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{23}
}

func (x *DeleteUserRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteUserResponse) Reset() {
	*x = DeleteUserResponse{}
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteUserResponse) ProtoMessage() {}

func (x *DeleteUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scanvault_v1_scanvault_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteUserResponse.ProtoReflect.Descriptor instead.
func (*DeleteUserResponse) Descriptor() ([]byte, []int) {
	return file_scanvault_v1_scanvault_proto_rawDescGZIP(), []int{24}
}

var File_scanvault_v1_scanvault_proto protoreflect.FileDescriptor

const file_scanvault_v1_scanvault_proto_rawDesc = "" +
	"\n" +
	"\x1cscanvault/v1/scanvault.proto\x12\fscanvault.v1\"\xb8\x01\n" +
	"\x05Group\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcustomer_id\x18\x02 \x01(\tR\n" +
	"customerId\x12\x19\n" +
	"\bowner_id\x18\x03 \x01(\tR\aownerId\x12%\n" +
	"\x0edocument_count\x18\x04 \x01(\x05R\rdocumentCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xbf\x01\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bgroup_id\x18\x02 \x01(\tR\agroupId\x12\x1b\n" +
	"\timage_ref\x18\x03 \x01(\tR\bimageRef\x12\x19\n" +
	"\basset_id\x18\x04 \x01(\tR\aassetId\x12\x12\n" +
	"\x04type\x18\x05 \x01(\tR\x04type\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"!\n" +
	"\x0fGetGroupRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"=\n" +
	"\x10GetGroupResponse\x12)\n" +
	"\x05group\x18\x01 \x01(\v2\x13.scanvault.v1.GroupR\x05group\".\n" +
	"\x11ListGroupsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"A\n" +
	"\x12ListGroupsResponse\x12+\n" +
	"\x06groups\x18\x01 \x03(\v2\x13.scanvault.v1.GroupR\x06groups\"C\n" +
	"\x13SearchGroupsRequest\x12,\n" +
	"\x12customer_id_prefix\x18\x01 \x01(\tR\x10customerIdPrefix\"C\n" +
	"\x14SearchGroupsResponse\x12+\n" +
	"\x06groups\x18\x01 \x03(\v2\x13.scanvault.v1.GroupR\x06groups\"^\n" +
	"\x10SaveGroupRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x1f\n" +
	"\vcustomer_id\x18\x03 \x01(\tR\n" +
	"customerId\">\n" +
	"\x11SaveGroupResponse\x12)\n" +
	"\x05group\x18\x01 \x01(\v2\x13.scanvault.v1.GroupR\x05group\"$\n" +
	"\x12DeleteGroupRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x15\n" +
	"\x13DeleteGroupResponse\"1\n" +
	"\x14ListDocumentsRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.scanvault.v1.DocumentR\tdocuments\"'\n" +
	"\x15DeleteDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteDocumentResponse\"\x10\n" +
	"\x0eRunSyncRequest\"\xa4\x01\n" +
	"\fSyncProgress\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12\x1f\n" +
	"\vcustomer_id\x18\x02 \x01(\tR\n" +
	"customerId\x12\x12\n" +
	"\x04done\x18\x03 \x01(\x05R\x04done\x12\x14\n" +
	"\x05total\x18\x04 \x01(\x05R\x05total\x12\x18\n" +
	"\abundles\x18\x05 \x01(\x05R\abundles\x12\x14\n" +
	"\x05error\x18\x06 \x01(\tR\x05error\"\x8d\x01\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\" \n" +
	"\x0eGetUserRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"9\n" +
	"\x0fGetUserResponse\x12&\n" +
	"\x04user\x18\x01 \x01(\v2\x12.scanvault.v1.UserR\x04user\"Z\n" +
	"\x0fSaveUserRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\":\n" +
	"\x10SaveUserResponse\x12&\n" +
	"\x04user\x18\x01 \x01(\v2\x12.scanvault.v1.UserR\x04user\"#\n" +
	"\x11DeleteUserRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x14\n" +
	"\x12DeleteUserResponse2\xd9\x04\n" +
	"\vScanService\x12I\n" +
	"\bGetGroup\x12\x1d.scanvault.v1.GetGroupRequest\x1a\x1e.scanvault.v1.GetGroupResponse\x12O\n" +
	"\n" +
	"ListGroups\x12\x1f.scanvault.v1.ListGroupsRequest\x1a .scanvault.v1.ListGroupsResponse\x12U\n" +
	"\fSearchGroups\x12!.scanvault.v1.SearchGroupsRequest\x1a\".scanvault.v1.SearchGroupsResponse\x12L\n" +
	"\tSaveGroup\x12\x1e.scanvault.v1.SaveGroupRequest\x1a\x1f.scanvault.v1.SaveGroupResponse\x12R\n" +
	"\vDeleteGroup\x12 .scanvault.v1.DeleteGroupRequest\x1a!.scanvault.v1.DeleteGroupResponse\x12X\n" +
	"\rListDocuments\x12\".scanvault.v1.ListDocumentsRequest\x1a#.scanvault.v1.ListDocumentsResponse\x12[\n" +
	"\x0eDeleteDocument\x12#.scanvault.v1.DeleteDocumentRequest\x1a$.scanvault.v1.DeleteDocumentResponse2V\n" +
	"\rExportService\x12E\n" +
	"\aRunSync\x12\x1c.scanvault.v1.RunSyncRequest\x1a\x1a.scanvault.v1.SyncProgress0\x012\xf1\x01\n" +
	"\vUserService\x12F\n" +
	"\aGetUser\x12\x1c.scanvault.v1.GetUserRequest\x1a\x1d.scanvault.v1.GetUserResponse\x12I\n" +
	"\bSaveUser\x12\x1d.scanvault.v1.SaveUserRequest\x1a\x1e.scanvault.v1.SaveUserResponse\x12O\n" +
	"\n" +
	"DeleteUser\x12\x1f.scanvault.v1.DeleteUserRequest\x1a .scanvault.v1.DeleteUserResponseBCZAgithub.com/scanvault/scanvault/gen/proto/scanvault/v1;scanvaultv1b\x06proto3"

var (
	file_scanvault_v1_scanvault_proto_rawDescOnce sync.Once
	file_scanvault_v1_scanvault_proto_rawDescData []byte
)

func file_scanvault_v1_scanvault_proto_rawDescGZIP() []byte {
	file_scanvault_v1_scanvault_proto_rawDescOnce.Do(func() {
		file_scanvault_v1_scanvault_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_scanvault_v1_scanvault_proto_rawDesc), len(file_scanvault_v1_scanvault_proto_rawDesc)))
	})
	return file_scanvault_v1_scanvault_proto_rawDescData
}

var file_scanvault_v1_scanvault_proto_msgTypes = make([]protoimpl.MessageInfo, 25)
var file_scanvault_v1_scanvault_proto_goTypes = []any{
	(*Group)(nil),                  // 0: scanvault.v1.Group
	(*Document)(nil),               // 1: scanvault.v1.Document
	(*GetGroupRequest)(nil),        // 2: scanvault.v1.GetGroupRequest
	(*GetGroupResponse)(nil),       // 3: scanvault.v1.GetGroupResponse
	(*ListGroupsRequest)(nil),      // 4: scanvault.v1.ListGroupsRequest
	(*ListGroupsResponse)(nil),     // 5: scanvault.v1.ListGroupsResponse
	(*SearchGroupsRequest)(nil),    // 6: scanvault.v1.SearchGroupsRequest
	(*SearchGroupsResponse)(nil),   // 7: scanvault.v1.SearchGroupsResponse
	(*SaveGroupRequest)(nil),       // 8: scanvault.v1.SaveGroupRequest
	(*SaveGroupResponse)(nil),      // 9: scanvault.v1.SaveGroupResponse
	(*DeleteGroupRequest)(nil),     // 10: scanvault.v1.DeleteGroupRequest
	(*DeleteGroupResponse)(nil),    // 11: scanvault.v1.DeleteGroupResponse
	(*ListDocumentsRequest)(nil),   // 12: scanvault.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),  // 13: scanvault.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),  // 14: scanvault.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil), // 15: scanvault.v1.DeleteDocumentResponse
	(*RunSyncRequest)(nil),         // 16: scanvault.v1.RunSyncRequest
	(*SyncProgress)(nil),           // 17: scanvault.v1.SyncProgress
	(*User)(nil),                   // 18: scanvault.v1.User
	(*GetUserRequest)(nil),         // 19: scanvault.v1.GetUserRequest
	(*GetUserResponse)(nil),        // 20: scanvault.v1.GetUserResponse
	(*SaveUserRequest)(nil),        // 21: scanvault.v1.SaveUserRequest
	(*SaveUserResponse)(nil),       // 22: scanvault.v1.SaveUserResponse
	(*DeleteUserRequest)(nil),      // 23: scanvault.v1.DeleteUserRequest
	(*DeleteUserResponse)(nil),     // 24: scanvault.v1.DeleteUserResponse
}
var file_scanvault_v1_scanvault_proto_depIdxs = []int32{
	0,  // 0: scanvault.v1.GetGroupResponse.group:type_name -> scanvault.v1.Group
	0,  // 1: scanvault.v1.ListGroupsResponse.groups:type_name -> scanvault.v1.Group
	0,  // 2: scanvault.v1.SearchGroupsResponse.groups:type_name -> scanvault.v1.Group
	0,  // 3: scanvault.v1.SaveGroupResponse.group:type_name -> scanvault.v1.Group
	1,  // 4: scanvault.v1.ListDocumentsResponse.documents:type_name -> scanvault.v1.Document
	18, // 5: scanvault.v1.GetUserResponse.user:type_name -> scanvault.v1.User
	18, // 6: scanvault.v1.SaveUserResponse.user:type_name -> scanvault.v1.User
	2,  // 7: scanvault.v1.ScanService.GetGroup:input_type -> scanvault.v1.GetGroupRequest
	4,  // 8: scanvault.v1.ScanService.ListGroups:input_type -> scanvault.v1.ListGroupsRequest
	6,  // 9: scanvault.v1.ScanService.SearchGroups:input_type -> scanvault.v1.SearchGroupsRequest
	8,  // 10: scanvault.v1.ScanService.SaveGroup:input_type -> scanvault.v1.SaveGroupRequest
	10, // 11: scanvault.v1.ScanService.DeleteGroup:input_type -> scanvault.v1.DeleteGroupRequest
	12, // 12: scanvault.v1.ScanService.ListDocuments:input_type -> scanvault.v1.ListDocumentsRequest
	14, // 13: scanvault.v1.ScanService.DeleteDocument:input_type -> scanvault.v1.DeleteDocumentRequest
	16, // 14: scanvault.v1.ExportService.RunSync:input_type -> scanvault.v1.RunSyncRequest
	19, // 15: scanvault.v1.UserService.GetUser:input_type -> scanvault.v1.GetUserRequest
	21, // 16: scanvault.v1.UserService.SaveUser:input_type -> scanvault.v1.SaveUserRequest
	23, // 17: scanvault.v1.UserService.DeleteUser:input_type -> scanvault.v1.DeleteUserRequest
	3,  // 18: scanvault.v1.ScanService.GetGroup:output_type -> scanvault.v1.GetGroupResponse
	5,  // 19: scanvault.v1.ScanService.ListGroups:output_type -> scanvault.v1.ListGroupsResponse
	7,  // 20: scanvault.v1.ScanService.SearchGroups:output_type -> scanvault.v1.SearchGroupsResponse
	9,  // 21: scanvault.v1.ScanService.SaveGroup:output_type -> scanvault.v1.SaveGroupResponse
	11, // 22: scanvault.v1.ScanService.DeleteGroup:output_type -> scanvault.v1.DeleteGroupResponse
	13, // 23: scanvault.v1.ScanService.ListDocuments:output_type -> scanvault.v1.ListDocumentsResponse
	15, // 24: scanvault.v1.ScanService.DeleteDocument:output_type -> scanvault.v1.DeleteDocumentResponse
	17, // 25: scanvault.v1.ExportService.RunSync:output_type -> scanvault.v1.SyncProgress
	20, // 26: scanvault.v1.UserService.GetUser:output_type -> scanvault.v1.GetUserResponse
	22, // 27: scanvault.v1.UserService.SaveUser:output_type -> scanvault.v1.SaveUserResponse
	24, // 28: scanvault.v1.UserService.DeleteUser:output_type -> scanvault.v1.DeleteUserResponse
	18, // [18:29] is the sub-list for method output_type
	7,  // [7:18] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_scanvault_v1_scanvault_proto_init() }
func file_scanvault_v1_scanvault_proto_init() {
	if File_scanvault_v1_scanvault_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_scanvault_v1_scanvault_proto_rawDesc), len(file_scanvault_v1_scanvault_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   25,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_scanvault_v1_scanvault_proto_goTypes,
		DependencyIndexes: file_scanvault_v1_scanvault_proto_depIdxs,
		MessageInfos:      file_scanvault_v1_scanvault_proto_msgTypes,
	}.Build()
	File_scanvault_v1_scanvault_proto = out.File
	file_scanvault_v1_scanvault_proto_goTypes = nil
	file_scanvault_v1_scanvault_proto_depIdxs = nil
}
